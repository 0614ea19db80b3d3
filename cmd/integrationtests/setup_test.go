package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"bid-exchange/internal/bidservice"
	model "bid-exchange/internal/models"
	"bid-exchange/internal/repository"
	"bid-exchange/internal/server"
)

// recordingDispatcher captures dispatched events for assertions without
// calling a real gateway.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []string
}

func (d *recordingDispatcher) Dispatch(event string, buyer, seller model.Party) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

func (d *recordingDispatcher) Events() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.events...)
}

func (d *recordingDispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = nil
}

// SetupTestRouter initializes the router over a seeded in-memory repository.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo, *recordingDispatcher) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.AddParty(model.Party{PartyID: "buyer1", Name: "Asha", MobileNo: "9800000001"})
	repo.AddParty(model.Party{PartyID: "buyer2", Name: "Ravi", MobileNo: "9800000021"})
	repo.AddParty(model.Party{PartyID: "seller1", Name: "Mehta", MobileNo: "9800000011"})
	repo.AddItem(model.Item{
		ItemID:   "item1",
		SellerID: "seller1",
		Details: model.ItemDetails{
			"glass":   {Quantity: 50},
			"plastic": {Quantity: 120},
		},
	})

	dispatcher := &recordingDispatcher{}
	service := bidservice.NewBidService(repo, dispatcher)
	router := server.SetupRouter(service)
	return router, repo, dispatcher
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// authHeaders returns the access-token header the create route requires.
func authHeaders() map[string]string {
	return map[string]string{"x-access-token": "test-token"}
}
