package gitlab

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
)

type fileResponse struct {
	FilePath string `json:"file_path"`
	// Base64 encoded.
	Content string `json:"content"`
}

func fileEndpoint(projectID uint64, filePath string) string {
	return fmt.Sprintf("/projects/%d/repository/files/%s", projectID, url.PathEscape(filePath))
}

// FileExists probes for a file on a branch. A transport error and a
// non-success status both mean "does not exist".
func (c *Client) FileExists(ctx context.Context, projectID uint64, filePath string, branch string) bool {
	c.log.Debugw("checking if file exists", "project_id", projectID, "file_path", filePath, "branch", branch)

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ref", branch).
		Get(fileEndpoint(projectID, filePath))
	if err != nil {
		return false
	}

	return res.IsSuccess()
}

// GetFileContent fetches a file from a branch and decodes its content.
// File content must be valid text; binary files are not distinguished.
func (c *Client) GetFileContent(ctx context.Context, projectID uint64, filePath string, branch string) (string, error) {
	c.log.Debugw("fetching file content", "project_id", projectID, "file_path", filePath, "branch", branch)

	var file fileResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ref", branch).
		SetResult(&file).
		Get(fileEndpoint(projectID, filePath))
	if err != nil {
		return "", err
	}
	if !res.IsSuccess() {
		return "", apiErr("get file", fmt.Sprintf("project %d, path %s, branch %s", projectID, filePath, branch), res)
	}

	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}

	return string(decoded), nil
}

// CreateFile commits a new file to a branch.
func (c *Client) CreateFile(ctx context.Context, projectID uint64, filePath string, branch string, commitMessage string, content string) error {
	c.log.Debugw("creating file", "project_id", projectID, "file_path", filePath, "branch", branch)

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(commitBody(branch, commitMessage, content)).
		Post(fileEndpoint(projectID, filePath))
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return apiErr("create file", fmt.Sprintf("project %d, path %s, branch %s", projectID, filePath, branch), res)
	}

	return nil
}

// UpdateFile commits new content for an existing file on a branch.
func (c *Client) UpdateFile(ctx context.Context, projectID uint64, filePath string, branch string, commitMessage string, content string) error {
	c.log.Debugw("updating file", "project_id", projectID, "file_path", filePath, "branch", branch)

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(commitBody(branch, commitMessage, content)).
		Put(fileEndpoint(projectID, filePath))
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return apiErr("update file", fmt.Sprintf("project %d, path %s, branch %s", projectID, filePath, branch), res)
	}

	return nil
}

// WriteFile creates or updates a file depending on its current existence.
// The probe and the write are two separate calls, not atomic; a file
// created concurrently between them can still fail the write.
func (c *Client) WriteFile(ctx context.Context, projectID uint64, filePath string, branch string, commitMessage string, content string) error {
	if c.FileExists(ctx, projectID, filePath, branch) {
		c.log.Debugw("file exists, updating", "file_path", filePath)
		return c.UpdateFile(ctx, projectID, filePath, branch, commitMessage, content)
	}

	c.log.Debugw("file does not exist, creating", "file_path", filePath)
	return c.CreateFile(ctx, projectID, filePath, branch, commitMessage, content)
}

func commitBody(branch string, commitMessage string, content string) map[string]string {
	return map[string]string{
		"branch":         branch,
		"content":        base64.StdEncoding.EncodeToString([]byte(content)),
		"commit_message": commitMessage,
	}
}
