package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/portfolio/internal/client/session"
)

// newCollectionCmd builds list/get/create/update/delete for one content
// collection. Reads are public; writes need a session.
func newCollectionCmd(a *App, collection string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   collection,
		Short: fmt.Sprintf("Manage %s", collection),
	}

	var published, featured bool
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", collection),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if cmd.Flags().Changed("published") {
				q.Set("published", strconv.FormatBool(published))
			}
			if cmd.Flags().Changed("featured") {
				q.Set("featured", strconv.FormatBool(featured))
			}
			raw, err := a.api.List(cmd.Context(), collection, q)
			if err != nil {
				return err
			}
			return a.printJSON(raw)
		},
	}
	list.Flags().BoolVar(&published, "published", false, "filter by published flag")
	list.Flags().BoolVar(&featured, "featured", false, "filter by featured flag")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.api.Get(cmd.Context(), collection, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(raw)
		},
	}

	var createFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an entry from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.readJSON(createFile)
			if err != nil {
				return err
			}
			return a.guard.Require(cmd.Context(), func(s session.Snapshot) error {
				raw, err := a.api.Create(cmd.Context(), s.Token, collection, body)
				if err != nil {
					return err
				}
				return a.printJSON(raw)
			})
		},
	}
	create.Flags().StringVarP(&createFile, "file", "f", "-", "JSON file, - for stdin")

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an entry with a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.readJSON(updateFile)
			if err != nil {
				return err
			}
			return a.guard.Require(cmd.Context(), func(s session.Snapshot) error {
				raw, err := a.api.Update(cmd.Context(), s.Token, collection, args[0], body)
				if err != nil {
					return err
				}
				return a.printJSON(raw)
			})
		},
	}
	update.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON file, - for stdin")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard.Require(cmd.Context(), func(s session.Snapshot) error {
				if err := a.api.Delete(cmd.Context(), s.Token, collection, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func (a *App) readJSON(name string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" || name == "" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: not a valid JSON document", displayName(name))
	}
	return data, nil
}

func displayName(name string) string {
	if name == "-" || name == "" {
		return "stdin"
	}
	return name
}

func (a *App) printJSON(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(a.out)
	return err
}
