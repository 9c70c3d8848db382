package messaging

import "strings"

type ReplyRule struct {
	Keyword string
	Reply   string
}

// AutoReplies is checked in order; the first keyword found in the message wins.
var AutoReplies = []ReplyRule{
	{Keyword: "confirm", Reply: "Appointment confirmed. Thank you, Doctor."},
	{Keyword: "cancel", Reply: "Appointment cancelled."},
}

// AutoReply returns the reply for body, or an empty string when no rule matches.
func AutoReply(rules []ReplyRule, body string) string {
	folded := strings.ToLower(body)
	for _, rule := range rules {
		if strings.Contains(folded, rule.Keyword) {
			return rule.Reply
		}
	}
	return ""
}
