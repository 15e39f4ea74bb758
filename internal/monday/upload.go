package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

// Attachment is one uploaded file. Open is called once per upload attempt
// and the returned reader is consumed and closed by the uploader; the
// binary content never reaches the logs.
type Attachment struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// UploadAll uploads attachments to an item's file column, one at a time, in
// order. Zero-size files and files without a name are skipped silently. The
// first failure aborts the remaining uploads; the item and the files already
// uploaded stay as they are.
func (c *Client) UploadAll(ctx context.Context, itemID, columnID string, files []Attachment) error {
	for _, f := range files {
		if f.Name == "" || f.Size <= 0 {
			c.log.DebugContext(ctx, "attachment skipped",
				slog.String("item_id", itemID),
				slog.String("filename", f.Name),
				slog.Int64("size", f.Size),
			)
			continue
		}
		if err := c.uploadFile(ctx, itemID, columnID, f); err != nil {
			return &domain.UploadError{Filename: f.Name, Err: err}
		}
	}
	return nil
}

type addFileData struct {
	AddFileToColumn struct {
		ID string `json:"id"`
	} `json:"add_file_to_column"`
}

// uploadFile posts one multipart upload request: the mutation text, its
// variables with the file reference left null, the map that routes the file
// part into that null slot, and the file stream itself.
func (c *Client) uploadFile(ctx context.Context, itemID, columnID string, att Attachment) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadBody(mw, itemID, columnID, att))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.fileURL, pr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", c.token)

	c.log.DebugContext(ctx, "attachment upload",
		slog.String("item_id", itemID),
		slog.String("column_id", columnID),
		slog.String("filename", att.Name),
		slog.Int64("size", att.Size),
	)

	resp, err := c.fileClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope(resp.Body, "add_file_to_column")
	if err != nil {
		return err
	}

	var parsed addFileData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("decode: %w: %w", domain.ErrTransport, err)
	}
	if parsed.AddFileToColumn.ID == "" {
		return fmt.Errorf("%w: response carries no file id", domain.ErrTransport)
	}
	return nil
}

func writeUploadBody(mw *multipart.Writer, itemID, columnID string, att Attachment) error {
	if err := mw.WriteField("query", addFileMutation); err != nil {
		return err
	}

	variables, err := json.Marshal(map[string]any{
		"file":   nil,
		"item":   itemID,
		"column": columnID,
	})
	if err != nil {
		return err
	}
	if err := mw.WriteField("variables", string(variables)); err != nil {
		return err
	}
	if err := mw.WriteField("map", `{"file":["variables.file"]}`); err != nil {
		return err
	}

	part, err := mw.CreateFormFile("file", att.Name)
	if err != nil {
		return err
	}
	src, err := att.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	if _, err := io.Copy(part, src); err != nil {
		return err
	}

	return mw.Close()
}
