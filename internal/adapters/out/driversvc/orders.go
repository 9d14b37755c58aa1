package driversvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"dispatch/internal/core/domain/model/driver"
)

// driverOrderDTO mirrors the driver order service's task wire format.
type driverOrderDTO struct {
	DriverID        string   `json:"driverId"`
	OrderID         string   `json:"orderId"`
	UserID          string   `json:"userId"`
	UserName        string   `json:"userName"`
	RestaurantID    string   `json:"restaurantId"`
	DeliveryAddress string   `json:"deliveryAddress"`
	OrderItems      []string `json:"orderItems"`
	Price           float64  `json:"price"`
	OrderDate       string   `json:"orderDate"`
	OrderTime       string   `json:"orderTime"`
	IsOrderComplete bool     `json:"isOrderComplete"`
	Remarks         string   `json:"remarks"`
}

// OrderServiceClient talks to the driver order service. It implements both
// ports.DriverWorkload (incomplete task counts) and ports.DispatchNotifier
// (task submission), since both live on the same API.
type OrderServiceClient struct {
	baseURL string
	client  *http.Client
}

// NewOrderServiceClient creates an order service client for the given base URL.
func NewOrderServiceClient(baseURL string, client *http.Client) (*OrderServiceClient, error) {
	base, err := validateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = NewHTTPClient(0)
	}

	return &OrderServiceClient{baseURL: base, client: client}, nil
}

// IncompleteTaskCount returns how many incomplete tasks the driver currently
// holds. The service answers with the full task list; only its length matters
// for capacity checks.
func (c *OrderServiceClient) IncompleteTaskCount(ctx context.Context, driverID string) (int, error) {
	endpoint := fmt.Sprintf("%s/api/driver-orders/orders/incomplete/%s", c.baseURL, url.PathEscape(driverID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("query driver workload: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return 0, unexpectedStatus(resp)
	}

	var tasks []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return 0, fmt.Errorf("decode driver workload response: %w", err)
	}

	return len(tasks), nil
}

// Submit posts a new task to the assigned driver's queue. Any non-2xx
// response means the task was not accepted.
func (c *OrderServiceClient) Submit(ctx context.Context, task driver.Task) error {
	dto := driverOrderDTO{
		DriverID:        task.DriverID,
		OrderID:         task.OrderID,
		UserID:          task.UserID,
		UserName:        task.UserName,
		RestaurantID:    task.RestaurantID,
		DeliveryAddress: task.DeliveryAddress,
		OrderItems:      task.OrderItems,
		Price:           task.Price,
		OrderDate:       task.OrderDate,
		OrderTime:       task.OrderTime,
		IsOrderComplete: task.IsOrderComplete,
		Remarks:         task.Remarks,
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + "/api/driver-orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit driver task: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return unexpectedStatus(resp)
	}

	return nil
}
