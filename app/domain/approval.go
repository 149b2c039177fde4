package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus represents the state of a content approval record
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ContentType represents the kind of content under review
type ContentType string

const (
	ContentTypeBlog   ContentType = "blog"
	ContentTypeSocial ContentType = "social"
	ContentTypeEmail  ContentType = "email"
	ContentTypeAd     ContentType = "ad"
)

// ContentApproval represents a content item awaiting client approval.
// Records are created by admins and never hard-deleted.
type ContentApproval struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Type        ContentType    `json:"type"`
	ClientID    uuid.UUID      `json:"client_id"`
	ClientEmail string         `json:"client_email"`
	Status      ApprovalStatus `json:"status"`
	CreatedBy   uuid.UUID      `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewContentApproval creates a content approval record with validation
func NewContentApproval(title, description, content string, contentType ContentType, clientID uuid.UUID, clientEmail string, createdBy uuid.UUID) (*ContentApproval, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client ID is required")
	}
	if createdBy == uuid.Nil {
		return nil, fmt.Errorf("creator ID is required")
	}

	switch contentType {
	case ContentTypeBlog, ContentTypeSocial, ContentTypeEmail, ContentTypeAd:
	default:
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	now := time.Now()

	return &ContentApproval{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Content:     content,
		Type:        contentType,
		ClientID:    clientID,
		ClientEmail: clientEmail,
		Status:      ApprovalStatusPending,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ChangeStatus changes the approval status with validation
func (a *ContentApproval) ChangeStatus(status ApprovalStatus) error {
	switch status {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		a.Status = status
		a.UpdatedAt = time.Now()
		return nil
	}
	return fmt.Errorf("%w: invalid approval status %q", ErrInvalidInput, status)
}

// IsPending returns true if the record is awaiting review
func (a *ContentApproval) IsPending() bool {
	return a.Status == ApprovalStatusPending
}
