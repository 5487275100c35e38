package jira

import "encoding/json"

// Issue represents a single Jira issue from the REST API.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Expand string      `json:"expand,omitempty"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the standard fields of a Jira issue.
// Pointer fields are nil when the field filter excluded them.
type IssueFields struct {
	Summary     string       `json:"summary"`
	Description string       `json:"description,omitempty"`
	Status      *Status      `json:"status,omitempty"`
	Priority    *Priority    `json:"priority,omitempty"`
	IssueType   *IssueType   `json:"issuetype,omitempty"`
	Project     *Project     `json:"project,omitempty"`
	Assignee    *User        `json:"assignee,omitempty"`
	Reporter    *User        `json:"reporter,omitempty"`
	Labels      []string     `json:"labels,omitempty"`
	Created     string       `json:"created,omitempty"`
	Updated     string       `json:"updated,omitempty"`
	DueDate     string       `json:"duedate,omitempty"`
	Attachment  []Attachment `json:"attachment,omitempty"`
}

// SearchResult is the response of GET /search.
type SearchResult struct {
	Expand     string  `json:"expand,omitempty"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Priority is an issue priority as returned by GET /priority.
type Priority struct {
	Self        string `json:"self,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
	StatusColor string `json:"statusColor,omitempty"`
}

// Status is a workflow status as returned by GET /status.
type Status struct {
	Self           string          `json:"self,omitempty"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	IconURL        string          `json:"iconUrl,omitempty"`
	StatusCategory *StatusCategory `json:"statusCategory,omitempty"`
}

// StatusCategory is the broad category a status belongs to.
type StatusCategory struct {
	Self      string `json:"self,omitempty"`
	ID        int    `json:"id"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	ColorName string `json:"colorName,omitempty"`
}

// IssueType describes the type of an issue (Bug, Story, ...).
type IssueType struct {
	Self        string `json:"self,omitempty"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Subtask     bool   `json:"subtask"`
}

// Project is the short project reference embedded in issues.
type Project struct {
	Self string `json:"self,omitempty"`
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// User represents a Jira user.
type User struct {
	Self         string `json:"self,omitempty"`
	Key          string `json:"key,omitempty"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Active       bool   `json:"active"`
	TimeZone     string `json:"timeZone,omitempty"`
}

// CreateMeta is the response of GET /issue/createmeta.
type CreateMeta struct {
	Expand   string              `json:"expand,omitempty"`
	Projects []CreateMetaProject `json:"projects"`
}

// CreateMetaProject holds the issue types that can be created in a project.
type CreateMetaProject struct {
	Self       string                `json:"self,omitempty"`
	ID         string                `json:"id"`
	Key        string                `json:"key"`
	Name       string                `json:"name"`
	IssueTypes []CreateMetaIssueType `json:"issuetypes"`
}

// CreateMetaIssueType describes one issue type and its creatable fields.
type CreateMetaIssueType struct {
	Self        string               `json:"self,omitempty"`
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Subtask     bool                 `json:"subtask"`
	Fields      map[string]FieldMeta `json:"fields,omitempty"`
}

// FieldMeta describes a field on the create screen.
type FieldMeta struct {
	Required        bool              `json:"required"`
	Name            string            `json:"name"`
	Key             string            `json:"key,omitempty"`
	HasDefaultValue bool              `json:"hasDefaultValue"`
	Operations      []string          `json:"operations,omitempty"`
	AllowedValues   []json.RawMessage `json:"allowedValues,omitempty"`
	AutoCompleteURL string            `json:"autoCompleteUrl,omitempty"`
	Schema          FieldSchema       `json:"schema"`
}

// FieldSchema is the type descriptor of a field.
type FieldSchema struct {
	Type     string `json:"type"`
	Items    string `json:"items,omitempty"`
	System   string `json:"system,omitempty"`
	Custom   string `json:"custom,omitempty"`
	CustomID int    `json:"customId,omitempty"`
}

// CreatedIssue is the summary returned by POST /issue.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// Attachment is the metadata of a file attached to an issue.
type Attachment struct {
	Self      string `json:"self,omitempty"`
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Author    *User  `json:"author,omitempty"`
	Created   string `json:"created,omitempty"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mimeType,omitempty"`
	Content   string `json:"content,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ApplicationProperty is a server-side setting from GET /application-properties.
type ApplicationProperty struct {
	ID            string   `json:"id"`
	Key           string   `json:"key"`
	Value         string   `json:"value"`
	Name          string   `json:"name,omitempty"`
	Desc          string   `json:"desc,omitempty"`
	Type          string   `json:"type,omitempty"`
	DefaultValue  string   `json:"defaultValue,omitempty"`
	AllowedValues []string `json:"allowedValues,omitempty"`
}

// Comment is an issue comment.
type Comment struct {
	Self    string `json:"self,omitempty"`
	ID      string `json:"id"`
	Body    string `json:"body"`
	Author  *User  `json:"author,omitempty"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// CreateIssueRequest holds the parameters of CreateIssue.
type CreateIssueRequest struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueTypeID string
	PriorityID  string
	Labels      []string
}

// UpdateIssueRequest holds the fields to change in UpdateIssue.
// Empty values are left unchanged on the server.
type UpdateIssueRequest struct {
	Summary     string
	Description string
	PriorityID  string
	Labels      []string
}

// SearchOptions controls field selection and paging of Search.
// Zero StartAt and MaxResults are sent as-is; the server applies its own
// default page size only when MaxResults is absent, so callers wanting
// the server default should pass DefaultMaxResults.
type SearchOptions struct {
	Fields     []string
	StartAt    int
	MaxResults int
}

// DefaultMaxResults mirrors the server's default page size.
const DefaultMaxResults = 50

// Request payloads. Each write operation has its own static shape.

type keyRef struct {
	Key string `json:"key"`
}

type idRef struct {
	ID string `json:"id"`
}

type createIssueFields struct {
	Project     keyRef   `json:"project"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	IssueType   idRef    `json:"issuetype"`
	Priority    idRef    `json:"priority"`
	Labels      []string `json:"labels"`
}

type createIssuePayload struct {
	Fields createIssueFields `json:"fields"`
}

type updateIssueFields struct {
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    *idRef   `json:"priority,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

type updateIssuePayload struct {
	Fields updateIssueFields `json:"fields"`
}

type commentPayload struct {
	Body string `json:"body"`
}
