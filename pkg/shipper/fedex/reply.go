package fedex

// Shared pieces of the XML gateway replies.

// notification is the carrier's status block attached to every XML reply and
// to each track detail.
type notification struct {
	Severity string `xml:"Severity"`
	Source   string `xml:"Source"`
	Code     string `xml:"Code"`
	Message  string `xml:"Message"`
}

// severitySuccess reports whether a reply severity still counts as a usable
// response. NOTE and WARNING accompany successful replies.
func severitySuccess(severity string) bool {
	switch severity {
	case "SUCCESS", "NOTE", "WARNING":
		return true
	}
	return false
}

// firstMessage returns the first notification message, used as the
// human-readable reply message.
func firstMessage(notifications []notification) string {
	if len(notifications) == 0 {
		return ""
	}
	return notifications[0].Message
}
