package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/domain/services"
	"github.com/vsinha/siteorders/pkg/infrastructure/config"
	"github.com/vsinha/siteorders/pkg/infrastructure/fixtures"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() http.Handler {
	sessions := session.NewManager(fixtures.BuildDemoStore(), 0)
	return NewServer(config.Config{}, sessions, zerolog.Nop()).Handler()
}

func do(t *testing.T, handler http.Handler, sessionID, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), "", http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSessionHeaderIsGeneratedAndEchoed(t *testing.T) {
	handler := newTestServer()

	rec := do(t, handler, "", http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(SessionHeader))

	rec = do(t, handler, "tab-1", http.MethodGet, "/api/projects", nil)
	require.Equal(t, "tab-1", rec.Header().Get(SessionHeader))

	var projects []entities.Project
	decode(t, rec, &projects)
	require.Len(t, projects, 4)
}

func TestSessionsAreIsolated(t *testing.T) {
	handler := newTestServer()

	rec := do(t, handler, "tab-1", http.MethodDelete, "/api/segments/s1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var listings []dto.SegmentListing
	decode(t, do(t, handler, "tab-1", http.MethodGet, "/api/segments", nil), &listings)
	require.Len(t, listings, 4)

	decode(t, do(t, handler, "tab-2", http.MethodGet, "/api/segments", nil), &listings)
	require.Len(t, listings, 5)
	require.Equal(t, entities.SegmentID("s1"), listings[0].Segment.ID)
}

func TestCreateSegment(t *testing.T) {
	handler := newTestServer()

	rec := do(t, handler, "tab", http.MethodPost, "/api/segments", SegmentRequest{
		ProjectID: "p1", StartDate: "2025-11-20", EndDate: "2025-11-18", Scope: "paint",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var segment entities.Segment
	decode(t, rec, &segment)
	require.Equal(t, "2025-11-18", segment.StartDate.String())
	require.Equal(t, "2025-11-20", segment.EndDate.String())
	require.Equal(t, entities.NotOrdered, segment.OrderStatus)

	var segments []entities.Segment
	decode(t, do(t, handler, "tab", http.MethodGet, "/api/calendar/day/2025-11-19?projectId=p1", nil), &segments)
	require.Len(t, segments, 2)
	require.Equal(t, entities.SegmentID("s1"), segments[0].ID)
	require.Equal(t, segment.ID, segments[1].ID)
}

func TestCreateSegmentValidation(t *testing.T) {
	handler := newTestServer()

	tests := []struct {
		name   string
		req    SegmentRequest
		status int
	}{
		{"bad date", SegmentRequest{ProjectID: "p1", StartDate: "20/11/2025", EndDate: "2025-11-21", Scope: "paint"}, http.StatusBadRequest},
		{"bad scope", SegmentRequest{ProjectID: "p1", StartDate: "2025-11-20", EndDate: "2025-11-21", Scope: "roofing"}, http.StatusBadRequest},
		{"missing project", SegmentRequest{StartDate: "2025-11-20", EndDate: "2025-11-21", Scope: "paint"}, http.StatusBadRequest},
		{"unknown project", SegmentRequest{ProjectID: "p99", StartDate: "2025-11-20", EndDate: "2025-11-21", Scope: "paint"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, "tab", http.MethodPost, "/api/segments", tt.req)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateAndDeleteUnknownSegment(t *testing.T) {
	handler := newTestServer()
	req := SegmentRequest{StartDate: "2025-11-20", EndDate: "2025-11-21", Scope: "mixed"}

	require.Equal(t, http.StatusNotFound, do(t, handler, "tab", http.MethodPut, "/api/segments/nope", req).Code)
	require.Equal(t, http.StatusNotFound, do(t, handler, "tab", http.MethodDelete, "/api/segments/nope", nil).Code)

	rec := do(t, handler, "tab", http.MethodPut, "/api/segments/s2", req)
	require.Equal(t, http.StatusOK, rec.Code)
	var segment entities.Segment
	decode(t, rec, &segment)
	require.Equal(t, entities.ScopeMixed, segment.Scope)
	require.Equal(t, entities.ProjectID("p2"), segment.ProjectID)
}

func TestOrderFlow(t *testing.T) {
	handler := newTestServer()

	rec := do(t, handler, "tab", http.MethodGet, "/api/order", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, handler, "tab", http.MethodPost, "/api/order/select", SelectSegmentRequest{SegmentID: "s1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var draft dto.OrderDraft
	decode(t, rec, &draft)
	require.Len(t, draft.Items, 2)

	zero := int64(0)
	rec = do(t, handler, "tab", http.MethodPut, "/api/order/items", SetQuantityRequest{MaterialID: "m1", Quantity: &zero})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &draft)
	require.Len(t, draft.Items, 1)
	require.Contains(t, draft.Document, "Total Items: 3")

	negative := int64(-2)
	rec = do(t, handler, "tab", http.MethodPut, "/api/order/items", SetQuantityRequest{MaterialID: "m1", Quantity: &negative})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, handler, "tab", http.MethodPost, "/api/order/place", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var placed dto.PlacedOrder
	decode(t, rec, &placed)
	require.Equal(t, entities.Quantity(3), placed.TotalItems)

	var summary dto.OrderSummary
	decode(t, do(t, handler, "tab", http.MethodGet, "/api/segments/s1/summary", nil), &summary)
	require.Equal(t, dto.OrderSummary{NotOrdered: 1, Ordered: 1}, summary)

	require.Equal(t, http.StatusNotFound, do(t, handler, "tab", http.MethodGet, "/api/segments/s9/summary", nil).Code)
}

func TestMarkDeliveredAndActivity(t *testing.T) {
	handler := newTestServer()

	rec := do(t, handler, "tab", http.MethodPost, "/api/segment-materials/sm3/deliver", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var row entities.SegmentMaterial
	decode(t, rec, &row)
	require.Equal(t, entities.Delivered, row.Status)
	require.NotNil(t, row.DeliveredAt)

	var entries []ActivityEntry
	decode(t, do(t, handler, "tab", http.MethodGet, "/api/activity", nil), &entries)
	require.Len(t, entries, 1)
	require.Equal(t, "material.delivered", entries[0].Type)
	require.Equal(t, "segment-s4", entries[0].Stream)

	require.Equal(t, http.StatusNotFound, do(t, handler, "tab", http.MethodPost, "/api/segment-materials/nope/deliver", nil).Code)
}

func TestCalendarAndTimeline(t *testing.T) {
	handler := newTestServer()

	var month dto.MonthView
	rec := do(t, handler, "tab", http.MethodGet, "/api/calendar/month?date=2025-12-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &month)
	require.Equal(t, "December", month.Month)
	require.Equal(t, []entities.SegmentID{"s4"}, month.Weeks[1][2].SegmentIDs)

	require.Equal(t, http.StatusBadRequest, do(t, handler, "tab", http.MethodGet, "/api/calendar/month?date=tomorrow", nil).Code)
	require.Equal(t, http.StatusBadRequest, do(t, handler, "tab", http.MethodGet, "/api/calendar/day/2025-13-01", nil).Code)

	var timeline dto.TimelineView
	rec = do(t, handler, "tab", http.MethodGet, "/api/timeline?weekStart=2025-12-10&days=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &timeline)
	require.Len(t, timeline.Days, 7)
	require.Equal(t, "2025-12-08", timeline.Days[0].String())
	require.Len(t, timeline.Rows[2].Bars, 1)
}

func TestMaterialsAndIntegrity(t *testing.T) {
	handler := newTestServer()

	var groups []dto.CategoryGroup
	decode(t, do(t, handler, "tab", http.MethodGet, "/api/materials?q=rockwool", nil), &groups)
	require.Len(t, groups, 1)
	require.Equal(t, entities.MaterialID("m11"), groups[0].Materials[0].ID)

	require.Equal(t, http.StatusNoContent, do(t, handler, "tab", http.MethodDelete, "/api/segments/s4", nil).Code)

	var result services.IntegrityResult
	decode(t, do(t, handler, "tab", http.MethodGet, "/api/integrity", nil), &result)
	require.Empty(t, result.Errors)
	require.Len(t, result.OrphanedSegmentMaterials, 2)
}
