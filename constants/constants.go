package constants

// Config
const ConfigFileName = "~/.config/glabops/config.yml"

// GitLab API
const PerPage = 100
const FallbackBranch = "main"

// Defaults
const DefaultCommitMessage = "Update file via glabops"
const DefaultRole = "maintainer"
