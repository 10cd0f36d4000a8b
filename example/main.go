package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Jumpaku/go-gdrive"
	"github.com/Jumpaku/go-gdrive/gdrivemust"
	_ "github.com/Jumpaku/go-gdrive/provider"
	"github.com/Jumpaku/go-gdrive/storage"
)

func openDrive(ctx context.Context) gdrive.Drive {
	creds, err := os.ReadFile(os.Getenv("GDRIVE_SERVICE_ACCOUNT_JSON"))
	if err != nil {
		log.Panic(err)
	}
	d, err := storage.Open(ctx, "google", storage.Config{
		FolderID:    os.Getenv("GDRIVE_FOLDER_ID"),
		Credentials: creds,
	})
	if err != nil {
		log.Panic(err)
	}
	return d
}

var sc = func() *bufio.Scanner {
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanLines)
	return sc
}()

func step() {
	sc.Scan()
}

func main() {
	ctx := context.Background()
	d := openDrive(ctx)

	// Create a folder in the configured root folder
	step()
	dir, err := d.Mkdir(ctx, "example")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Folder: %s (ID: %s)\n", dir.Name, dir.ID)

	// Upload a file into the folder
	step()
	file, err := d.Put(ctx, gdrive.Payload{Name: "example.txt", Content: strings.NewReader("Hello, Google Drive!")},
		gdrive.InFolder(dir.ID))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Uploaded: %s (ID: %s, %d bytes)\n", file.Name, file.ID, file.Size)

	// Uploading again in strict mode returns the same file
	step()
	again, err := d.Put(ctx, gdrive.Payload{Name: "example.txt", Content: strings.NewReader("ignored")},
		gdrive.InFolder(dir.ID))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Strict upload returned: %s\n", again.ID)

	// Share it with anyone with the link
	step()
	if ok, err := d.MakeFilePublic(ctx, file.ID); err != nil || !ok {
		log.Fatal(ok, err)
	}
	fmt.Printf("Public link: %s\n", file.WebViewLink)

	// Read the content back and remember its ETag
	step()
	res, err := d.Get(ctx, file.ID, gdrive.ModeInline, gdrive.StreamRequest{})
	if err != nil {
		log.Fatal(err)
	}
	stream := res.(*gdrive.Stream)
	var buf bytes.Buffer
	if err := stream.Send(ctx, func(chunk []byte) error {
		_, err := buf.Write(chunk)
		return err
	}); err != nil {
		log.Fatal(err)
	}
	etag := stream.Header().Get("ETag")
	fmt.Printf("Content: %s (ETag %s)\n", buf.String(), etag)

	// A conditional request does not download the content again
	step()
	res, err = d.Get(ctx, file.ID, gdrive.ModeInline, gdrive.StreamRequest{IfNoneMatch: etag})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Conditional request status: %d\n", res.StatusCode())

	// List the folder page by page
	step()
	for token := ""; ; {
		page, err := d.ListFiles(ctx, gdrive.InFolder(dir.ID), gdrive.PageSize(1), gdrive.PageToken(token))
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range page.Files {
			fmt.Printf("%s (folder: %v, ID: %s)\n", f.Name, f.IsFolder(), f.ID)
		}
		if !page.HasNextPage() {
			break
		}
		token = page.NextPageToken
	}

	// Renaming to a taken name fails in strict mode
	step()
	must := gdrivemust.New(d)
	other := must.Put(ctx, gdrive.Payload{Name: "other.txt", Content: strings.NewReader("other")}, gdrive.InFolder(dir.ID))
	if _, err := d.Rename(ctx, other.ID, "example.txt", gdrive.InFolder(dir.ID)); !errors.Is(err, gdrive.ErrConflict) {
		log.Fatal("expected conflict: ", err)
	}
	renamed := must.Rename(ctx, other.ID, "renamed.txt", gdrive.InFolder(dir.ID))
	fmt.Printf("Renamed: %s\n", renamed.Name)

	// Find by name
	step()
	found := must.Find(ctx, "renamed.txt", gdrive.InFolder(dir.ID))
	for _, f := range found.Files {
		fmt.Printf("Found: %s\n", f.ID)
	}

	// Revoke the link and clean up
	step()
	fmt.Println("private:", must.MakeFilePrivate(ctx, file.ID))
	for _, id := range []gdrive.FileID{file.ID, renamed.ID, dir.ID} {
		fmt.Printf("deleted %s: %v\n", id, must.Delete(ctx, id))
	}
}
