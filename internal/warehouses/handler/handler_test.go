package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvzadmin/internal/store"
	"pvzadmin/internal/warehouses/service"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	log := logger.Discard()
	st := store.New(store.SeedWarehouses(), store.SeedPickupPoints())

	router := httprouter.New()
	NewWarehouseHandler(service.New(st, log), log).RegisterRoutes(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, st
}

func get[T any](t *testing.T, url string, wantStatus int) T {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedPoint(st *store.Store, id string, links ...model.WarehouseBusinessLink) {
	st.InsertBusinessPickupPoint(model.BusinessPickupPoint{
		ID:         id,
		Name:       "Точка " + id,
		Identifier: id,
	}, links)
}

func TestListWarehouses(t *testing.T) {
	srv, _ := newTestServer(t)
	warehouses := get[[]model.Warehouse](t, srv.URL+"/warehouses", http.StatusOK)
	require.Len(t, warehouses, 2)
	assert.Equal(t, "wh-1", warehouses[0].ID)
}

func TestFirstWarehouse(t *testing.T) {
	srv, _ := newTestServer(t)
	warehouse := get[model.Warehouse](t, srv.URL+"/warehouse", http.StatusOK)
	assert.Equal(t, "wh-1", warehouse.ID)
}

func TestPickupPoints(t *testing.T) {
	srv, _ := newTestServer(t)
	points := get[[]model.PickupPoint](t, srv.URL+"/pickup-points", http.StatusOK)
	assert.Len(t, points, 10)

	point := get[model.PickupPoint](t, srv.URL+"/pickup-points/"+points[0].ID, http.StatusOK)
	assert.Equal(t, points[0].Name, point.Name)

	resp, err := http.Get(srv.URL + "/pickup-points/pvz-missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBusinessPointsForWarehouse(t *testing.T) {
	srv, st := newTestServer(t)
	seedPoint(st, "bpp-1", model.WarehouseBusinessLink{
		WarehouseID: "wh-1", BusinessPickupPointID: "bpp-1", Enabled: true,
	})
	seedPoint(st, "bpp-2", model.WarehouseBusinessLink{
		WarehouseID: "wh-1", BusinessPickupPointID: "bpp-2", Enabled: false,
	})

	points := get[[]model.BusinessPickupPoint](t, srv.URL+"/warehouses/wh-1/business-pickup-points", http.StatusOK)
	require.Len(t, points, 1)
	assert.Equal(t, "bpp-1", points[0].ID)

	// No links: empty array, not null.
	points = get[[]model.BusinessPickupPoint](t, srv.URL+"/warehouses/wh-2/business-pickup-points", http.StatusOK)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestBusinessPointsUnknownWarehouse(t *testing.T) {
	srv, _ := newTestServer(t)

	// An id outside the warehouse registry is a 404, consistent with
	// the attach and detach endpoints, not an empty list.
	resp, err := http.Get(srv.URL + "/warehouses/wh-404/business-pickup-points")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAttachAndDetach(t *testing.T) {
	srv, st := newTestServer(t)
	seedPoint(st, "bpp-1")

	resp, err := http.Post(srv.URL+"/warehouses/wh-1/business-pickup-points/bpp-1", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	points := get[[]model.BusinessPickupPoint](t, srv.URL+"/warehouses/wh-1/business-pickup-points", http.StatusOK)
	require.Len(t, points, 1)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/warehouses/wh-1/business-pickup-points/bpp-1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	points = get[[]model.BusinessPickupPoint](t, srv.URL+"/warehouses/wh-1/business-pickup-points", http.StatusOK)
	assert.Empty(t, points)
}

func TestAttachUnknownWarehouse(t *testing.T) {
	srv, st := newTestServer(t)
	seedPoint(st, "bpp-1")

	resp, err := http.Post(srv.URL+"/warehouses/wh-404/business-pickup-points/bpp-1", "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDetachMissingLink(t *testing.T) {
	srv, st := newTestServer(t)
	seedPoint(st, "bpp-1")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/warehouses/wh-1/business-pickup-points/bpp-1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
