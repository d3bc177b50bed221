package chi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// pathID binds a required simple-style path parameter the way generated
// chi wrappers do. An unbindable id is reported as not found.
func pathID(r *http.Request, name string) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", fmt.Errorf("bind %s: %w", name, domain.ErrNotFound)
	}
	return id, nil
}

// readObject reads the body and returns its top-level keys. Anything other
// than a JSON object, including null and an empty body, is malformed.
func (s *Server) readObject(w http.ResponseWriter, r *http.Request) ([]byte, map[string]json.RawMessage, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read body: %w", domain.ErrMalformedRequest)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, nil, domain.ErrMalformedRequest
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, fmt.Errorf("decode body: %w", domain.ErrMalformedRequest)
	}
	return data, fields, nil
}

// decodeBody decodes a non-empty JSON object into dst. Field type
// mismatches are malformed requests.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	data, fields, err := s.readObject(w, r)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return domain.ErrMalformedRequest
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode body: %w", domain.ErrMalformedRequest)
	}
	return nil
}
