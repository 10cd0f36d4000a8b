package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/Jumpaku/go-gdrive"
	"github.com/spf13/cobra"
)

type folderFlags struct {
	folderID string
}

func (f *folderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.folderID, "folder", "f", "", "Folder ID (defaults to the configured folder)")
}

func (f *folderFlags) options() []gdrive.Option {
	if f.folderID == "" {
		return nil
	}
	return []gdrive.Option{gdrive.InFolder(gdrive.FileID(f.folderID))}
}

type pageFlags struct {
	folderFlags
	pageSize  int64
	pageToken string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	f.folderFlags.register(cmd)
	cmd.Flags().Int64Var(&f.pageSize, "page-size", gdrive.DefaultPageSize, "Maximum number of entries requested")
	cmd.Flags().StringVar(&f.pageToken, "page-token", "", "Continuation token of a previous page")
}

func (f *pageFlags) options() []gdrive.Option {
	return append(f.folderFlags.options(), gdrive.PageSize(f.pageSize), gdrive.PageToken(f.pageToken))
}

func newPutCmd(a *app) *cobra.Command {
	var (
		folder folderFlags
		name   string
		strict bool
		public bool
	)
	cmd := &cobra.Command{
		Use:   "put <local-file>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			f, err := a.fs.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			opts := append(folder.options(), gdrive.Strict(strict), gdrive.Public(public))
			if name != "" {
				opts = append(opts, gdrive.WithFileName(name))
			}
			file, err := d.Put(cmd.Context(), gdrive.Payload{Name: filepath.Base(args[0]), Content: f}, opts...)
			if err != nil {
				return err
			}
			printFiles(cmd.OutOrStdout(), file)
			return nil
		},
	}
	folder.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Name of the uploaded file (defaults to the local file name)")
	cmd.Flags().BoolVar(&strict, "strict", true, "Return an existing file with the same name instead of uploading")
	cmd.Flags().BoolVar(&public, "public", false, "Make the file readable by anyone with the link")
	return cmd
}

func newMkdirCmd(a *app) *cobra.Command {
	var (
		folder folderFlags
		strict bool
		public bool
	)
	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			dir, err := d.Mkdir(cmd.Context(), args[0], append(folder.options(), gdrive.Strict(strict), gdrive.Public(public))...)
			if err != nil {
				return err
			}
			printFiles(cmd.OutOrStdout(), dir)
			return nil
		},
	}
	folder.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", true, "Return an existing folder with the same name instead of creating one")
	cmd.Flags().BoolVar(&public, "public", false, "Make the folder readable by anyone with the link")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var page pageFlags
	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Find entries by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			res, err := d.Find(cmd.Context(), args[0], page.options()...)
			if err != nil {
				return err
			}
			printPage(cmd, res)
			return nil
		},
	}
	page.register(cmd)
	return cmd
}

func newLsCmd(a *app) *cobra.Command {
	var page pageFlags
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the children of a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			res, err := d.ListFiles(cmd.Context(), page.options()...)
			if err != nil {
				return err
			}
			printPage(cmd, res)
			return nil
		},
	}
	page.register(cmd)
	return cmd
}

func newRenameCmd(a *app) *cobra.Command {
	var (
		folder folderFlags
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "rename <file-id> <new-name>",
		Short: "Rename a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			file, err := d.Rename(cmd.Context(), gdrive.FileID(args[0]), args[1], append(folder.options(), gdrive.Strict(strict))...)
			if err != nil {
				return err
			}
			printFiles(cmd.OutOrStdout(), file)
			return nil
		},
	}
	folder.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", true, "Fail when the new name is already taken in the folder")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var (
		mode        string
		output      string
		ifNoneMatch string
		byteRange   string
	)
	cmd := &cobra.Command{
		Use:   "get <file-id>",
		Short: "Download the content of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamMode, err := gdrive.ParseStreamMode(mode)
			if err != nil {
				return err
			}
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			res, err := d.Get(cmd.Context(), gdrive.FileID(args[0]), streamMode, gdrive.StreamRequest{
				IfNoneMatch: ifNoneMatch,
				Range:       byteRange,
			})
			if err != nil {
				return err
			}

			switch res := res.(type) {
			case gdrive.NotModified:
				fmt.Fprintf(cmd.ErrOrStderr(), "not modified (ETag %s)\n", res.Header().Get("ETag"))
				return nil
			case *gdrive.Stream:
				w := cmd.OutOrStdout()
				if output != "-" {
					f, err := a.fs.Create(output)
					if err != nil {
						_ = res.Close()
						return fmt.Errorf("failed to create %s: %w", output, err)
					}
					defer f.Close()
					w = f
				}
				if err := res.Send(cmd.Context(), func(chunk []byte) error {
					_, err := w.Write(chunk)
					return err
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "ETag %s\n", res.Header().Get("ETag"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(gdrive.ModeDownload), "Streaming mode (inline, download)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&ifNoneMatch, "if-none-match", "", "ETag of a previous download")
	cmd.Flags().StringVar(&byteRange, "range", "", "Byte range, e.g. bytes=0-1023")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file-id>",
		Short: "Permanently delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			deleted, err := d.Delete(cmd.Context(), gdrive.FileID(args[0]))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "deleted", deleted)
			return nil
		},
	}
}

func newShareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share <file-id>",
		Short: "Make a file readable by anyone with the link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := d.MakeFilePublic(cmd.Context(), gdrive.FileID(args[0]))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "shared", ok)
			return nil
		},
	}
}

func newUnshareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unshare <file-id>",
		Short: "Revoke the link access granted by share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.openDrive(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := d.MakeFilePrivate(cmd.Context(), gdrive.FileID(args[0]))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "unshared", ok)
			return nil
		},
	}
}

func printFiles(w io.Writer, files ...gdrive.RemoteFile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range files {
		kind := "file"
		if f.IsFolder() {
			kind = "dir"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", f.ID, kind, f.Name, f.Size, f.WebViewLink)
	}
	_ = tw.Flush()
}

func printPage(cmd *cobra.Command, res gdrive.PaginatedResult) {
	printFiles(cmd.OutOrStdout(), res.Files...)
	if res.HasNextPage() {
		fmt.Fprintf(cmd.ErrOrStderr(), "next page: --page-token %s\n", res.NextPageToken)
	}
}

func printResult(w io.Writer, action string, ok bool) {
	if ok {
		fmt.Fprintln(w, action)
		return
	}
	fmt.Fprintf(w, "not %s: the request was accepted but had no effect\n", action)
}
