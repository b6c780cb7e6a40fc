package gitlab

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/glabops/cli/constants"
	"github.com/glabops/cli/models"
)

// GetProject fetches a project by its numeric ID.
func (c *Client) GetProject(ctx context.Context, id uint64) (*models.Project, error) {
	c.log.Debugw("fetching project by ID", "id", id)

	var project models.Project
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&project).
		Get(fmt.Sprintf("/projects/%d", id))
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, apiErr("get project", fmt.Sprintf("id %d", id), res)
	}

	return &project, nil
}

// GetProjectByPath fetches a project by its full path with namespace.
func (c *Client) GetProjectByPath(ctx context.Context, path string) (*models.Project, error) {
	c.log.Debugw("fetching project by path", "path", path)

	var project models.Project
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&project).
		Get("/projects/" + url.PathEscape(path))
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, apiErr("get project", fmt.Sprintf("path %s", path), res)
	}

	return &project, nil
}

// ListProjects returns every project visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	return c.listProjects(ctx, nil)
}

// FindProjectsByTopic returns every project carrying the given topic.
func (c *Client) FindProjectsByTopic(ctx context.Context, topic string) ([]models.Project, error) {
	return c.listProjects(ctx, map[string]string{"topic": topic})
}

// listProjects pages through /projects with the given filters. The server
// returns fixed-size pages; an empty page is the termination signal. Pages
// are concatenated in server order without re-sorting.
func (c *Client) listProjects(ctx context.Context, query map[string]string) ([]models.Project, error) {
	var all []models.Project

	for page := 1; ; page++ {
		var batch []models.Project
		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			SetQueryParam("per_page", strconv.Itoa(constants.PerPage)).
			SetQueryParam("page", strconv.Itoa(page)).
			SetResult(&batch).
			Get("/projects")
		if err != nil {
			return nil, err
		}
		if !res.IsSuccess() {
			return nil, apiErr("list projects", fmt.Sprintf("page %d", page), res)
		}
		if len(batch) == 0 {
			break
		}

		c.log.Debugw("retrieved projects page", "page", page, "count", len(batch))
		all = append(all, batch...)
	}

	c.log.Debugw("retrieved projects", "count", len(all))
	return all, nil
}

// UpdateTopics replaces a project's entire topic set. The caller is
// responsible for computing the final desired set; no diff happens here.
func (c *Client) UpdateTopics(ctx context.Context, projectID uint64, topics []string) (*models.Project, error) {
	c.log.Debugw("updating project topics", "project_id", projectID, "topics", topics)

	if topics == nil {
		topics = []string{}
	}

	var project models.Project
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"topics": topics}).
		SetResult(&project).
		Put(fmt.Sprintf("/projects/%d", projectID))
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, apiErr("update topics", fmt.Sprintf("project %d", projectID), res)
	}

	return &project, nil
}
