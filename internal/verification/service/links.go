package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/loginverify/loginverify/backend/go-services/internal/verification"
)

const verificationSubject = "Confirm your login to Flutter Login App"

// DecisionLink returns baseURL with "action=<action>&id=<id>" appended. The id
// is query-escaped; parameter names and order stay fixed so previously sent
// links keep working.
func DecisionLink(baseURL, action, id string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "action=" + url.QueryEscape(action) + "&id=" + url.QueryEscape(id)
}

func verificationHTML(baseURL, id string) string {
	return fmt.Sprintf(`
      <p>A new login attempt was detected on your account.</p>
      <p>Was this you?</p>
      <p>
        <a href="%s">Yes, that’s me</a>
        &nbsp;|&nbsp;
        <a href="%s">No, it isn’t me</a>
      </p>
    `, DecisionLink(baseURL, verification.ActionApprove, id), DecisionLink(baseURL, verification.ActionDeny, id))
}
