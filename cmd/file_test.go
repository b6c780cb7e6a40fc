package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestChangeListKeepsCommas(t *testing.T) {
	var got []string

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.GenericFlag{Name: "change", Value: &ChangeList{}},
		},
		Action: func(c *cli.Context) error {
			got = c.Generic("change").(*ChangeList).Values()
			return nil
		},
	}

	err := app.Run([]string{"glabops", "--change", "old,x:new,y", "--change", "a:b"})
	require.NoError(t, err)

	// Each occurrence arrives whole; commas inside a pair survive.
	assert.Equal(t, []string{"old,x:new,y", "a:b"}, got)
}

func TestChangeListEmpty(t *testing.T) {
	var got []string

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.GenericFlag{Name: "change", Value: &ChangeList{}},
		},
		Action: func(c *cli.Context) error {
			if list, ok := c.Generic("change").(*ChangeList); ok {
				got = list.Values()
			}
			return nil
		},
	}

	require.NoError(t, app.Run([]string{"glabops"}))
	assert.Empty(t, got)
}
