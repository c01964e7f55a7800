package mailing

import (
	"fmt"
	"html"
)

// CommentNotifier mails recipe authors about new comments.
type CommentNotifier struct {
	config MailConfig
}

func NewCommentNotifier() *CommentNotifier {
	return &CommentNotifier{config: LoadMailConfig()}
}

func (n *CommentNotifier) Enabled() bool {
	return n.config.Enabled()
}

func (n *CommentNotifier) NotifyNewComment(toEmail, recipeTitle, recipeSlug, commenter, body string) error {
	if !n.Enabled() {
		return nil
	}
	subject := fmt.Sprintf("New comment on %s", recipeTitle)
	content := fmt.Sprintf(
		"<p><strong>%s</strong> commented on <a href=\"%s/recipes/%s\">%s</a>:</p><blockquote>%s</blockquote>",
		html.EscapeString(commenter),
		n.config.AppURL,
		recipeSlug,
		html.EscapeString(recipeTitle),
		html.EscapeString(body),
	)
	return n.config.Send(toEmail, subject, content)
}
