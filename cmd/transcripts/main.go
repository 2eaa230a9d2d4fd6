// Command transcripts prints the collaboration transcripts archived in BadgerDB,
// newest first.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"rig-lab/repositories"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

const previewLength = 40

func main() {
	dbPath := pflag.String("db", "./data/badger", "Path to badger DB")
	limit := pflag.Int("limit", 0, "Maximum number of transcripts, 0 lists all")
	messages := pflag.Bool("messages", false, "Print every message of each transcript")
	pflag.Parse()

	if err := run(*dbPath, *limit, *messages); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath string, limit int, withMessages bool) error {
	db, err := badger.Open(badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	repository := repositories.NewTranscriptRepository(db, slog.New(slog.DiscardHandler))
	var bound *int
	if limit > 0 {
		bound = &limit
	}
	transcripts, err := repository.ListTranscripts(bound)
	if err != nil {
		return err
	}

	fmt.Println(color.New(color.BgBlack, color.FgGreen).
		Render(fmt.Sprintf("  ====== %d transcript(s) in %s ======", len(transcripts), dbPath)))

	table := newTable()
	table.SetHeader([]string{"Session", "Started", "Ended", "Messages", "Last"})
	for _, transcript := range transcripts {
		table.Append([]string{
			transcript.SessionID.String()[:8],
			transcript.StartedAt.Format("2006-01-02 15:04:05"),
			transcript.EndedAt.Format("15:04:05"),
			fmt.Sprint(len(transcript.Messages)),
			lastMessage(transcript),
		})
	}
	table.Render()

	if !withMessages {
		return nil
	}
	for _, transcript := range transcripts {
		fmt.Println(color.New(color.FgCyan).Render(fmt.Sprintf("\n  ------ %s ------", transcript.SessionID)))
		detail := newTable()
		detail.SetHeader([]string{"Seq", "At", "Author", "Text"})
		for _, message := range transcript.Messages {
			detail.Append([]string{
				fmt.Sprint(message.Sequence),
				message.At.Format("15:04:05"),
				message.Author,
				message.Text,
			})
		}
		detail.Render()
	}
	return nil
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func lastMessage(transcript repositories.DiskTranscript) string {
	if len(transcript.Messages) == 0 {
		return ""
	}
	last := transcript.Messages[len(transcript.Messages)-1]
	text := strings.ReplaceAll(last.Text, "\n", " ")
	if len(text) > previewLength {
		text = text[:previewLength] + "..."
	}
	return fmt.Sprintf("%s: %s", last.Author, text)
}
