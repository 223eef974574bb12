package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/matzehuels/boxflow/pkg/buildinfo"
	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/flex"
	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// errorResponse is the body of every error response.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	spec, opts, err := s.decodeRequest(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	l, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), spec, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	spec, opts, err := s.decodeRequest(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{format}
	if opts.Scale, err = floatParam(q.Get("scale")); err != nil {
		writeError(w, err)
		return
	}
	if opts.Labels, err = boolParam(q.Get("labels")); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), spec, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	setCacheHeader(w, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// decodeRequest reads the tree description and the options shared by both
// POST routes.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (flex.NodeSpec, pipeline.Options, error) {
	var opts pipeline.Options
	q := r.URL.Query()

	var err error
	if opts.Width, err = floatParam(q.Get("width")); err != nil {
		return flex.NodeSpec{}, opts, err
	}
	if opts.Height, err = floatParam(q.Get("height")); err != nil {
		return flex.NodeSpec{}, opts, err
	}
	if opts.Refresh, err = boolParam(q.Get("refresh")); err != nil {
		return flex.NodeSpec{}, opts, err
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return flex.NodeSpec{}, opts, errors.New(errors.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return flex.NodeSpec{}, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	spec, err := scene.Parse(data, formatFor(r.Header.Get("Content-Type")))
	if err != nil {
		return flex.NodeSpec{}, opts, err
	}
	return spec, opts, nil
}

// formatFor maps a request Content-Type to a tree description format.
func formatFor(contentType string) scene.Format {
	mt, _, _ := mime.ParseMediaType(contentType)
	switch mt {
	case "application/toml":
		return scene.FormatTOML
	case "application/hcl":
		return scene.FormatHCL
	default:
		return scene.FormatJSON
	}
}

func floatParam(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", v)
	}
	return f, nil
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid boolean %q", v)
	}
	return b, nil
}

func notFound(path string) error {
	return errors.New(errors.ErrCodeFileNotFound, "no route for %s", path)
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as an errorResponse. Uncoded errors become
// INTERNAL_ERROR.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), errorResponse{Code: code, Message: errors.UserMessage(err)})
}
