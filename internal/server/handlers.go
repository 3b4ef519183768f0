package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/embed"
	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/model"
	"github.com/showline/report-cli/internal/registry"
	"github.com/showline/report-cli/internal/report"
)

// reportColumns is the fixed column order the UI renders.
var reportColumns = []string{"channel_name", "industry", "region", "page_url", "view_count"}

type optionsResponse struct {
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
}

type processResponse struct {
	Columns         []string             `json:"columns"`
	Rows            []model.ReportRow    `json:"rows"`
	Groups          []model.ChannelGroup `json:"groups"`
	CurrentPage     int                  `json:"current_page"`
	PageSize        int                  `json:"page_size"`
	HasNext         bool                 `json:"has_next"`
	TotalGroupCount int                  `json:"total_group_count"`
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	refs, err := s.registry.FetchReference(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	industries, countries := registry.Options(refs)
	writeJSON(w, http.StatusOK, optionsResponse{Industries: industries, Countries: countries})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	video, err := s.uploadedTable(r, "video_file", "video")
	if err != nil {
		writeError(w, r, err)
		return
	}
	live, err := s.uploadedTable(r, "live_file", "live")
	if err != nil {
		writeError(w, r, err)
		return
	}

	refs, err := s.registry.FetchReference(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	params := report.RunParams{
		Source:          model.SourceType(r.FormValue("case_type")),
		Industries:      formIndustries(r),
		Country:         r.FormValue("country"),
		Page:            formInt(r, "page", 1),
		PageSize:        s.cfg.Report.PageSize,
		MaxRowsPerGroup: s.cfg.Report.MaxRowsPerGroup,
	}
	if params.Source != model.SourceLive {
		params.Source = model.SourceVideo
	}

	result, err := report.Run(video, live, refs, params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var classifications map[string]model.Classification
	if formBool(r, "check_embeds") {
		classifications = s.checker.CheckURLs(r.Context(), report.URLs(result.Records))
	}

	writeJSON(w, http.StatusOK, processResponse{
		Columns:         reportColumns,
		Rows:            report.Rows(result.Records, classifications),
		Groups:          result.Page.Groups,
		CurrentPage:     result.Page.CurrentPage,
		PageSize:        result.Page.PageSize,
		HasNext:         result.Page.HasNext,
		TotalGroupCount: result.Page.TotalGroupCount,
	})
}

type checkURLsRequest struct {
	URLs        []string `json:"urls"`
	Concurrency int      `json:"concurrency"`
}

func (s *Server) handleCheckURLs(w http.ResponseWriter, r *http.Request) {
	var req checkURLsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.URLs) == 0 {
		writeErrorStatus(w, http.StatusBadRequest, "urls is required")
		return
	}

	checker := s.checker
	if req.Concurrency > 0 && req.Concurrency != s.cfg.Check.Concurrency {
		checker = embed.NewChecker(s.pageFetcher, req.Concurrency, 0)
	}

	writeJSON(w, http.StatusOK, checker.CheckURLs(r.Context(), req.URLs))
}

// uploadedTable reads one uploaded workbook into performance records.
func (s *Server) uploadedTable(r *http.Request, field, table string) ([]model.PerformanceRecord, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, &model.DataError{Table: table}
	}
	defer func() { _ = file.Close() }()

	if !allowedUpload(header) {
		return nil, &model.DataError{Table: table}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &model.DataError{Table: table}
	}

	rows, err := fetcher.ReadXLSXBytes(data, fetcher.XLSXOptions{})
	if err != nil {
		zap.L().Warn("process: unreadable workbook",
			zap.String("table", table),
			zap.Error(err),
		)
		return nil, &model.DataError{Table: table}
	}

	return report.ParsePerformanceTable(table, rows)
}

func allowedUpload(header *multipart.FileHeader) bool {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	return ext == ".xlsx" || ext == ".xls"
}

func formIndustries(r *http.Request) []string {
	var out []string
	for _, v := range r.Form["industry"] {
		if v != "" && v != report.FilterNone {
			out = append(out, v)
		}
	}
	return out
}

func formInt(r *http.Request, field string, fallback int) int {
	v := r.FormValue(field)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func formBool(r *http.Request, field string) bool {
	v := strings.ToLower(r.FormValue(field))
	return v == "true" || v == "1" || v == "yes"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeErrorStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps pipeline errors onto the API: schema problems are the
// operator's to fix (400), a dead registry feed is upstream (502),
// anything else is ours (500).
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var dataErr *model.DataError
	if errors.As(err, &dataErr) {
		writeErrorStatus(w, http.StatusBadRequest, dataErr.Error())
		return
	}

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		zap.L().Error("upstream unavailable",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeErrorStatus(w, http.StatusBadGateway, upstreamErr.Error())
		return
	}

	zap.L().Error("request failed",
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.Error(err),
	)
	writeErrorStatus(w, http.StatusInternalServerError, "internal error")
}
