package gitlab

import (
	"context"
	"fmt"
	"strconv"

	"github.com/glabops/cli/models"
)

// GetUser fetches a user by their numeric ID.
func (c *Client) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	c.log.Debugw("fetching user by ID", "id", id)

	var user models.User
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, apiErr("get user", fmt.Sprintf("id %d", id), res)
	}

	return &user, nil
}

// GetUserByUsername fetches a user by their unique username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	c.log.Debugw("fetching user by username", "username", username)

	var users []models.User
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, apiErr("get user", fmt.Sprintf("username %s", username), res)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user not found: %s", username)
	}

	return &users[0], nil
}

// AddMember grants a user access to a project.
//
// The members endpoint works on self-managed instances; gitlab.com only
// accepts the invitations endpoint. Any failure on the first attempt
// (transport error or non-success status) falls through to exactly one
// invitation attempt. Success on the first attempt short-circuits. When
// both fail, the returned error carries both endpoint errors so either
// path can be diagnosed.
func (c *Client) AddMember(ctx context.Context, userID uint64, projectID uint64, level models.AccessLevel) error {
	primaryErr := c.addDirectMember(ctx, userID, projectID, level)
	if primaryErr == nil {
		c.log.Debugw("added member via members endpoint", "user_id", userID, "project_id", projectID)
		return nil
	}

	c.log.Debugw("members endpoint failed, trying invitations endpoint",
		"user_id", userID, "project_id", projectID, "error", primaryErr)

	fallbackErr := c.inviteMember(ctx, userID, projectID, level)
	if fallbackErr == nil {
		c.log.Debugw("added member via invitations endpoint", "user_id", userID, "project_id", projectID)
		return nil
	}

	return fmt.Errorf("failed to add user %d to project %d: members endpoint: %v; invitations endpoint: %v",
		userID, projectID, primaryErr, fallbackErr)
}

func (c *Client) addDirectMember(ctx context.Context, userID uint64, projectID uint64, level models.AccessLevel) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"user_id":      userID,
			"access_level": int(level),
		}).
		Post(fmt.Sprintf("/projects/%d/members", projectID))
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return apiErr("add member", fmt.Sprintf("user %d, project %d", userID, projectID), res)
	}

	return nil
}

func (c *Client) inviteMember(ctx context.Context, userID uint64, projectID uint64, level models.AccessLevel) error {
	// The invitations endpoint takes the user id as a string.
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"user_id":      strconv.FormatUint(userID, 10),
			"access_level": int(level),
		}).
		Post(fmt.Sprintf("/projects/%d/invitations", projectID))
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return apiErr("invite member", fmt.Sprintf("user %d, project %d", userID, projectID), res)
	}

	return nil
}

// RemoveMember revokes a user's membership in a project. There is no
// fallback endpoint for removal.
func (c *Client) RemoveMember(ctx context.Context, userID uint64, projectID uint64) error {
	c.log.Debugw("removing member", "user_id", userID, "project_id", projectID)

	res, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/projects/%d/members/%d", projectID, userID))
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return apiErr("remove member", fmt.Sprintf("user %d, project %d", userID, projectID), res)
	}

	return nil
}
