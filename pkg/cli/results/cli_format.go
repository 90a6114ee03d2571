package results

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/vvraju56/web-scraper/pkg/models"
)

// FormatTableOutput formats a result set as a polished table for CLI output
func FormatTableOutput(set *models.ResultSet) string {
	if set.Empty() {
		return FormatEmptyState("No results found.")
	}

	var b strings.Builder
	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)

	if set.Version == models.APIv1 {
		fmt.Fprintln(w, "#\tEmail\tPhone")
		fmt.Fprintln(w, strings.Repeat("─", 4)+"\t"+strings.Repeat("─", 40)+"\t"+strings.Repeat("─", 20))
		for i, pair := range set.Pairs {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, pair.Email, pair.Phone)
		}
		w.Flush()
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total: %d row(s)\n", set.Len()))
		return b.String()
	}

	fmt.Fprintln(w, "Type\tValue\tSource")
	fmt.Fprintln(w, strings.Repeat("─", 8)+"\t"+strings.Repeat("─", 40)+"\t"+strings.Repeat("─", 34))
	for _, contact := range set.Contacts {
		fmt.Fprintf(w, "%s %s\t%s\t%s\n",
			TypeIcon(contact.Type),
			TypeLabel(contact.Type),
			contact.Value,
			ShortenURL(contact.Source),
		)
	}
	w.Flush()

	b.WriteString("\n")
	b.WriteString(SummaryLine(set.Summary))
	b.WriteString("\n")

	return b.String()
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

// FormatEmptyState formats an empty state message
func FormatEmptyState(message string) string {
	return fmt.Sprintf("\n%s\n", message)
}

// WriteToStdout writes formatted output to stdout
func WriteToStdout(content string) {
	fmt.Fprint(os.Stdout, content)
}

// WriteToStderr writes formatted output to stderr
func WriteToStderr(content string) {
	fmt.Fprint(os.Stderr, content)
}
