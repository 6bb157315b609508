package server

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

const attachPrefix = "attach://"

// textFields are always decoded as strings when they arrive as form values,
// even when the value happens to be valid JSON ("123", "true").
var textFields = map[string]struct{}{
	"text":              {},
	"caption":           {},
	"parse_mode":        {},
	"emoji":             {},
	"title":             {},
	"performer":         {},
	"question":          {},
	"explanation":       {},
	"address":           {},
	"foursquare_id":     {},
	"phone_number":      {},
	"first_name":        {},
	"last_name":         {},
	"vcard":             {},
	"callback_query_id": {},
	"inline_message_id": {},
	"file_id":           {},
	"url":               {},
}

// request is the body of one Bot API call, whatever encoding the caller
// used. Form values are turned into the JSON shape of the body so every
// method decodes through the same path.
type request struct {
	fields map[string]json.RawMessage
	files  map[string][]*multipart.FileHeader
}

func parseRequest(c *fiber.Ctx) (*request, error) {
	r := &request{fields: make(map[string]json.RawMessage)}
	contentType := string(c.Request().Header.ContentType())

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errors.Wrap(err, "parse multipart form")
		}
		for k, vs := range form.Value {
			if len(vs) > 0 {
				r.setValue(k, vs[0])
			}
		}
		r.files = form.File
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		c.Request().PostArgs().VisitAll(r.setArg)
	case len(c.Body()) > 0:
		if err := json.Unmarshal(c.Body(), &r.fields); err != nil {
			return nil, errors.Wrap(err, "decode json body")
		}
		if r.fields == nil {
			r.fields = make(map[string]json.RawMessage)
		}
	}
	c.Request().URI().QueryArgs().VisitAll(r.setArg)
	return r, nil
}

// setArg adds a url-encoded argument unless the body already set it.
func (r *request) setArg(k, v []byte) {
	if _, ok := r.fields[string(k)]; !ok {
		r.setValue(string(k), string(v))
	}
}

func (r *request) setValue(key, value string) {
	if _, ok := textFields[key]; ok || !json.Valid([]byte(value)) {
		raw, _ := json.Marshal(value)
		r.fields[key] = raw
		return
	}
	r.fields[key] = json.RawMessage(value)
}

func (r *request) decode(v any) error {
	data, err := json.Marshal(r.fields)
	if err != nil {
		return errors.Wrap(err, "encode fields")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "decode fields")
	}
	return nil
}

// inputFile reads a file parameter: an uploaded part named after the
// parameter, or a string holding a file id or URL.
func (r *request) inputFile(name string) (model.InputFile, error) {
	if fhs := r.files[name]; len(fhs) > 0 {
		return readUpload(fhs[0])
	}
	raw, ok := r.fields[name]
	if !ok {
		return model.InputFile{}, nil
	}
	var ref string
	if err := json.Unmarshal(raw, &ref); err != nil {
		return model.InputFile{}, errors.Wrapf(err, "decode %s", name)
	}
	if strings.HasPrefix(ref, attachPrefix) {
		return r.attachment(ref)
	}
	return model.InputFile{FileID: ref}, nil
}

// attachment resolves an attach://<name> reference to the uploaded part
// of that name.
func (r *request) attachment(ref string) (model.InputFile, error) {
	name := strings.TrimPrefix(ref, attachPrefix)
	fhs := r.files[name]
	if len(fhs) == 0 {
		return model.InputFile{}, errors.Errorf("no file attached as %q", name)
	}
	return readUpload(fhs[0])
}

func readUpload(fh *multipart.FileHeader) (model.InputFile, error) {
	f, err := fh.Open()
	if err != nil {
		return model.InputFile{}, errors.Wrap(err, "open upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.InputFile{}, errors.Wrap(err, "read upload")
	}
	if data == nil {
		data = []byte{}
	}
	return model.InputFile{FileName: fh.Filename, Data: data}, nil
}
