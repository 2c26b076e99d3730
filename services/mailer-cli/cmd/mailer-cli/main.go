package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/coder-mourya/Mail-sender/internal/client"
	"github.com/coder-mourya/Mail-sender/internal/recipients"
)

func main() {
	var (
		file        = flag.String("file", "", "recipient spreadsheet (.csv, .xlsx or .xls)")
		subject     = flag.String("subject", "", "email subject")
		content     = flag.String("content", "", "email body; {name} and {company} are substituted per recipient, @path reads the body from a file")
		previewOnly = flag.Bool("preview-only", false, "render the preview and exit without sending")
	)
	flag.Parse()

	_ = godotenv.Load()

	if *file == "" {
		log.Fatal("-file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	recs, err := recipients.Load(filepath.Base(*file), f)
	f.Close()
	if err != nil {
		log.Fatal("loading recipients: ", err)
	}

	body := *content
	if strings.HasPrefix(body, "@") {
		raw, err := os.ReadFile(body[1:])
		if err != nil {
			log.Fatal("reading content file: ", err)
		}
		body = string(raw)
	}

	st := &client.State{}
	st.SetRecipients(recs)
	st.SetSubject(*subject)
	st.SetContent(body)

	fmt.Printf("%d recipients loaded\n", len(recs))

	if st.SetPreview() {
		rendered, _ := st.RenderPreview()
		fmt.Printf("\nPreview for %s\nSubject: %s\n\n%s\n\n", st.Preview.Name, st.Subject, rendered)
	}

	if *previewOnly {
		return
	}
	if !st.CanSend() {
		log.Fatal("subject, content and at least one recipient are required to send")
	}

	res, err := client.New().Dispatch(context.Background(), st)
	if err != nil {
		log.Fatal("error sending emails: ", err)
	}

	fmt.Printf("Success: %d / Failed: %d\n", len(res.Success), len(res.Failed))
	for _, f := range res.Failed {
		fmt.Printf("  %s: %s\n", f.Email, f.Error)
	}
}
