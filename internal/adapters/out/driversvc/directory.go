package driversvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"dispatch/internal/core/domain/model/driver"
)

// driverInfoDTO mirrors the driver directory's wire format.
type driverInfoDTO struct {
	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	DriverAddress string `json:"driverAddress"`
	DriverPhone   string `json:"driverPhone"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	WorkingCity   string `json:"workingCity"`
}

// DirectoryClient implements ports.DriverDirectory against the driver
// directory service's REST API.
type DirectoryClient struct {
	baseURL string
	client  *http.Client
}

// NewDirectoryClient creates a directory client for the given base URL.
func NewDirectoryClient(baseURL string, client *http.Client) (*DirectoryClient, error) {
	base, err := validateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = NewHTTPClient(0)
	}

	return &DirectoryClient{baseURL: base, client: client}, nil
}

// DriversByCity returns the drivers registered for the given city, in the
// order the directory lists them. An empty result is not an error.
func (c *DirectoryClient) DriversByCity(ctx context.Context, city string) ([]driver.Driver, error) {
	endpoint := fmt.Sprintf("%s/api/deliveryDriver/city/%s", c.baseURL, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query driver directory: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var dtos []driverInfoDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode driver directory response: %w", err)
	}

	drivers := make([]driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		drivers = append(drivers, driver.Driver{
			ID:          dto.DriverID,
			Name:        dto.DriverName,
			Phone:       dto.DriverPhone,
			WorkingCity: dto.WorkingCity,
		})
	}

	return drivers, nil
}
