package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tender_service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := newApplication(context.Background(), &config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	return &apiClient{t: t, router: newRouter(app)}
}

func (c *apiClient) do(method, path, body string) (int, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func (c *apiClient) must(status int, method, path, body string) map[string]any {
	c.t.Helper()
	code, out := c.do(method, path, body)
	require.Equal(c.t, status, code, "%s %s: %v", method, path, out)
	return out
}

func TestPing(t *testing.T) {
	c := newAPIClient(t)
	out := c.must(http.StatusOK, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, "pong", out["message"])
}

func TestTenderLifecycleOverHTTP(t *testing.T) {
	c := newAPIClient(t)

	nit := c.must(http.StatusCreated, http.MethodPost, "/v1/nits", `{"memo_no":"12/PW/2024","memo_date":"2024-04-01"}`)
	nitID := nit["id"].(string)

	work := c.must(http.StatusCreated, http.MethodPost, "/v1/nits/"+nitID+"/works",
		`{"serial_no":3,"description":"Road repair","estimated_cost":"100000"}`)
	workID := work["id"].(string)
	assert.Equal(t, "ToBeOpened", work["tender_status"])

	code, _ := c.do(http.MethodDelete, "/v1/nits/"+nitID, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	bidIDs := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		bid := c.must(http.StatusCreated, http.MethodPost, "/v1/works/"+workID+"/bids", fmt.Sprintf(`{"agency_id":"agency-%d"}`, i))
		bidIDs = append(bidIDs, bid["id"].(string))
	}
	code, _ = c.do(http.MethodPost, "/v1/works/"+workID+"/bids", `{"agency_id":"agency-1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/tender-status", `{"tender_status":"TechnicalBidOpening"}`)
	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/tender-status", `{"tender_status":"TechnicalEvaluation"}`)

	c.must(http.StatusOK, http.MethodPut, "/v1/bids/"+bidIDs[0]+"/evaluation", `{"qualify":true,"document_ref":"tec-1"}`)
	c.must(http.StatusOK, http.MethodPut, "/v1/bids/"+bidIDs[1]+"/evaluation", `{"qualify":true,"document_ref":"tec-1"}`)
	c.must(http.StatusOK, http.MethodPut, "/v1/bids/"+bidIDs[2]+"/evaluation", `{"qualify":false,"document_ref":"tec-1"}`)

	code, blocked := c.do(http.MethodPatch, "/v1/works/"+workID+"/tender-status", `{"tender_status":"FinancialBidOpening"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "INSUFFICIENT_QUALIFIED_BIDDERS", blocked["code"])
	assert.Equal(t, "2 of 3 required qualified bidders", blocked["detail"])

	c.must(http.StatusOK, http.MethodPut, "/v1/bids/"+bidIDs[2]+"/evaluation", `{"qualify":true,"document_ref":"tec-2"}`)
	gate := c.must(http.StatusOK, http.MethodGet, "/v1/works/"+workID+"/qualification", "")
	assert.Equal(t, true, gate["can_advance"])

	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/tender-status", `{"tender_status":"FinancialBidOpening"}`)
	for i, amount := range []string{"95000", "92500", "99000"} {
		c.must(http.StatusOK, http.MethodPut, "/v1/bids/"+bidIDs[i]+"/amount", fmt.Sprintf(`{"bidding_amount":"%s"}`, amount))
	}
	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/tender-status", `{"tender_status":"FinancialEvaluation"}`)

	before := c.must(http.StatusOK, http.MethodGet, "/v1/works/"+workID+"/summary", "")
	assert.Equal(t, "100000.00", before["totals"].(map[string]any)["pending"])

	awarded := c.must(http.StatusCreated, http.MethodPost, "/v1/works/"+workID+"/award",
		fmt.Sprintf(`{"winning_bid_id":"%s","work_order_memo_no":"WO/33/2024","work_order_memo_date":"2024-04-20"}`, bidIDs[1]))
	assert.Equal(t, "7.50", awarded["work_order"].(map[string]any)["percentage"])
	awardID := awarded["award"].(map[string]any)["id"].(string)

	code, _ = c.do(http.MethodPost, "/v1/works/"+workID+"/award",
		fmt.Sprintf(`{"winning_bid_id":"%s","work_order_memo_no":"WO/34/2024","work_order_memo_date":"2024-04-20"}`, bidIDs[0]))
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	c.must(http.StatusCreated, http.MethodPost, "/v1/awards/"+awardID+"/agreement", `{"agreement_no":"AGR/9","agreement_date":"2024-04-25"}`)
	c.must(http.StatusOK, http.MethodPatch, "/v1/awards/"+awardID+"/delivery", "")

	receipt := c.must(http.StatusCreated, http.MethodPost, "/v1/works/"+workID+"/payments",
		`{"gross_bill_amount":"40000","bill_type":"running bill","deductions":{"income_tax":"800"}}`)
	assert.Equal(t, "39200.00", receipt["payment"].(map[string]any)["net_amount"])

	after := c.must(http.StatusOK, http.MethodGet, "/v1/works/"+workID+"/summary", "")
	assert.Equal(t, "60000.00", after["totals"].(map[string]any)["pending"])

	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/work-status", `{"work_status":"workinprogress"}`)
	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/work-status", `{"work_status":"workcompleted"}`)
	c.must(http.StatusCreated, http.MethodPost, "/v1/works/"+workID+"/payments", `{"gross_bill_amount":"55000","bill_type":"final bill"}`)
	c.must(http.StatusOK, http.MethodPatch, "/v1/works/"+workID+"/work-status", `{"work_status":"billpaid"}`)

	totals := c.must(http.StatusOK, http.MethodGet, "/v1/works/"+workID+"/payments/totals", "")
	assert.Equal(t, "0.00", totals["pending"])

	cert := c.must(http.StatusOK, http.MethodGet, "/v1/works/"+workID+"/certificate", "")
	assert.Equal(t, "CC/12/PW/2024/3", cert["certificate_no"])
	assert.Equal(t, "AGR/9", cert["agreement_no"])
}

func TestMetricsEndpoint(t *testing.T) {
	c := newAPIClient(t)
	c.must(http.StatusCreated, http.MethodPost, "/v1/nits", `{"memo_no":"7/PW/2024","memo_date":"2024-04-01"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `tender_workflow_events_total{type="nit.published"} 1`)
	assert.Contains(t, w.Body.String(), `tender_workflow_operations_total{action="publish_nit",outcome="success"} 1`)
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	c := newAPIClient(t)
	raw, err := swag.ReadDoc("swagger")
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	documented := 0
	for _, r := range c.router.Routes() {
		if !strings.HasPrefix(r.Path, "/v1/") {
			continue
		}
		path := strings.TrimPrefix(r.Path, "/v1")
		segments := strings.Split(path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path = strings.Join(segments, "/")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "path %s is not documented", path) {
			_, ok = ops[strings.ToLower(r.Method)]
			assert.True(t, ok, "%s %s is not documented", r.Method, path)
		}
		documented++
	}
	assert.Equal(t, 22, documented)
}
