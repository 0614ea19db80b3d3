package integrationtests

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func createBidPayload(details map[string]any, totalBid float64) map[string]any {
	return map[string]any{
		"seller_id":    "seller1",
		"contact_name": "Asha",
		"details":      details,
		"total_bid":    totalBid,
	}
}

// Full lifecycle: create, read, approve, delete.
func TestBidLifecycle(t *testing.T) {
	router, repo, dispatcher := SetupTestRouter()

	glassDetails := map[string]any{
		"glass": map[string]any{"quantity": 50, "bidQuantity": 10},
	}

	// create requires the access-token header
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer1/bids", createBidPayload(glassDetails, 500), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, dispatcher.Events())

	// create
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer1/bids", createBidPayload(glassDetails, 500), authHeaders())
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	bidID := data["bid_id"].(string)
	require.NotEmpty(t, bidID)
	require.Equal(t, "pending", data["status"])
	require.Equal(t, []string{"buyer-order-placed", "seller-order-placed"}, dispatcher.Events())
	dispatcher.Reset()

	// read back
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/"+bidID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, bidID, resp["data"].(map[string]any)["bid_id"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/buyer/buyer1/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 1)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/buyer/buyer2/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))

	// unknown ID is a 404, same convention as delete
	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/no-such-bid", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// approve: modify returns the reduced shape and decrements inventory
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/bids/"+bidID, map[string]any{
		"status":    "Approved",
		"total_bid": 500,
		"details":   glassDetails,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	require.Equal(t, "seller1", data["seller_id"])
	require.Contains(t, data, "details")

	item, err := repo.GetItemBySeller("seller1")
	require.NoError(t, err)
	require.Equal(t, 40, item.Details["glass"].Quantity)
	require.Equal(t, 120, item.Details["plastic"].Quantity)
	require.Equal(t, []string{"buyer-order-approved", "seller-order-approved"}, dispatcher.Events())
	dispatcher.Reset()

	// re-approving is rejected and must not decrement again
	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/bids/"+bidID, map[string]any{
		"status":    "approved",
		"total_bid": 500,
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	item, err = repo.GetItemBySeller("seller1")
	require.NoError(t, err)
	require.Equal(t, 40, item.Details["glass"].Quantity)
	require.Empty(t, dispatcher.Events())

	// delete fires exactly the cancelled pair and removes the bid
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/bids/"+bidID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"buyer-order-cancelled", "seller-order-cancelled"}, dispatcher.Events())

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/"+bidID, nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// inventory is not restored on cancellation
	item, err = repo.GetItemBySeller("seller1")
	require.NoError(t, err)
	require.Equal(t, 40, item.Details["glass"].Quantity)
}

// Denial is mutually exclusive with approval: no inventory mutation, no
// approval notifications.
func TestDenyBid(t *testing.T) {
	router, repo, dispatcher := SetupTestRouter()

	details := map[string]any{
		"glass": map[string]any{"quantity": 50, "bidQuantity": 10},
	}
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer1/bids", createBidPayload(details, 500), authHeaders())
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := resp["data"].(map[string]any)["bid_id"].(string)
	dispatcher.Reset()

	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/bids/"+bidID, map[string]any{
		"status":    "denied",
		"total_bid": 500,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	item, err := repo.GetItemBySeller("seller1")
	require.NoError(t, err)
	require.Equal(t, 50, item.Details["glass"].Quantity, "denial never touches inventory")
	require.Equal(t, []string{"buyer-order-declined", "seller-order-declined"}, dispatcher.Events())
}

// An edit without a status change fires the edited pair and keeps omitted
// fields, while total_bid is overwritten even when absent from the payload.
func TestEditBid(t *testing.T) {
	router, _, dispatcher := SetupTestRouter()

	details := map[string]any{
		"metal": map[string]any{"quantity": 30, "bidQuantity": 5},
	}
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer1/bids", createBidPayload(details, 250), authHeaders())
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := resp["data"].(map[string]any)["bid_id"].(string)
	dispatcher.Reset()

	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/bids/"+bidID, map[string]any{
		"contact_name": "Asha Updated",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"buyer-order-edited", "seller-order-edited"}, dispatcher.Events())

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/bids/"+bidID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "Asha Updated", data["contact_name"])
	require.Equal(t, "buyer1", data["buyer_id"], "omitted fields keep stored values")
	require.Equal(t, "pending", data["status"])
	require.Equal(t, 0.0, data["total_bid"], "total_bid is overwritten even when absent")
}

// Deleting a bid that does not exist reports not-found and dispatches nothing.
func TestDeleteMissingBid(t *testing.T) {
	router, _, dispatcher := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodDelete, "/bids/no-such-bid", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "bid not found", resp["message"])
	require.Empty(t, dispatcher.Events())
}

// Two bids approved near-simultaneously, each decrementing a different
// category of the same item, must both land in the final item state.
func TestConcurrentApprovals(t *testing.T) {
	router, repo, _ := SetupTestRouter()

	glass := map[string]any{"glass": map[string]any{"quantity": 50, "bidQuantity": 10}}
	plastic := map[string]any{"plastic": map[string]any{"quantity": 120, "bidQuantity": 20}}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer1/bids", createBidPayload(glass, 500), authHeaders())
	require.Equal(t, http.StatusCreated, w.Code)
	bid1 := resp["data"].(map[string]any)["bid_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/buyer/buyer2/bids", createBidPayload(plastic, 800), authHeaders())
	require.Equal(t, http.StatusCreated, w.Code)
	bid2 := resp["data"].(map[string]any)["bid_id"].(string)

	var wg sync.WaitGroup
	for _, bidID := range []string{bid1, bid2} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, w := ExecuteRequestAndParse(t, router, http.MethodPut, "/bids/"+id, map[string]any{
				"status":    "approved",
				"total_bid": 100,
			}, nil)
			if w.Code != http.StatusOK {
				t.Errorf("approve %s: unexpected status %d", id, w.Code)
			}
		}(bidID)
	}
	wg.Wait()

	item, err := repo.GetItemBySeller("seller1")
	require.NoError(t, err)
	require.Equal(t, 40, item.Details["glass"].Quantity)
	require.Equal(t, 100, item.Details["plastic"].Quantity)
}

// Listing endpoints stay consistent across many bids.
func TestListAcrossBuyers(t *testing.T) {
	router, _, _ := SetupTestRouter()

	details := map[string]any{"glass": map[string]any{"quantity": 50, "bidQuantity": 1}}
	for i := 0; i < 3; i++ {
		buyer := "buyer1"
		if i == 2 {
			buyer = "buyer2"
		}
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, fmt.Sprintf("/buyer/%s/bids", buyer), createBidPayload(details, float64(100+i)), authHeaders())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 3)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/buyer/buyer1/bids", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"].([]any), 2)
}
