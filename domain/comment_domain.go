package domain

import "time"

var (
	MessageSuccessAddComment    = "Comment successfully posted!"
	MessageSuccessEditComment   = "Comment successfully updated!"
	MessageSuccessDeleteComment = "Comment successfully deleted!"

	MessageCommentInvalid       = "Sorry, comment is invalid."
	MessageCommentLoginRequired = "You must be logged in to comment"
	MessageCommentNotFound      = "Comment not found"
	MessageCommentCouldNotFind  = "Comment could not be found"
	MessageCommentNotEditable   = "You are not authorised to edit this comment"
	MessageCommentNotDeletable  = "You are not authorised to delete this comment"
	MessageCommentUnchanged     = "Comment not updated, no change was made"
	MessageCommentFailedUpdate  = "Sorry, comment not updated"

	ErrCommentNotFound     = NewError(ErrNotFound, "comment not found")
	ErrCommentUnauthorized = NewError(ErrUnauthorized, "comment belongs to another user")
	ErrCommentUnchanged    = NewError(ErrInvalidInput, "comment body unchanged")
	ErrCommentInvalid      = NewError(ErrInvalidInput, "comment body is empty or too long")
)

const MaxCommentLength = 1200

type (
	AddCommentRequest struct {
		Body string `json:"body" form:"body" validate:"required,notblank,max=1200"`
	}

	EditCommentRequest struct {
		CommentID string `json:"commentId" validate:"required,uuid"`
		Body      string `json:"body" validate:"required,notblank,max=1200"`
	}

	Comment struct {
		ID        string    `json:"comment_id"`
		Body      string    `json:"body"`
		Author    string    `json:"author"`
		AuthorID  string    `json:"author_id"`
		Approved  bool      `json:"approved"`
		CreatedAt time.Time `json:"date"`
	}
)
