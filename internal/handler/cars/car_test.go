package cars

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carhub/internal/database"
	"carhub/internal/middleware"
	"carhub/internal/model"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

// helper to build echo context with an authenticated user
func newCarCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, &middleware.AuthUser{ID: 7, Name: "Alice", Email: "alice@example.com"})
	return ctx, rec
}

func restoreCarStubs() {
	createCar = store.CreateCar
	getCarByID = store.GetCarByID
	getCarDetailByID = store.GetCarDetailByID
	listCars = store.ListCars
	updateCar = store.UpdateCar
	deleteCar = store.DeleteCar
}

const carBody = `{"category":1,"color":"blue","model":"Corolla","make":"Toyota","registrationNo":"ABC-123"}`

func sampleDetail(id int) *model.CarDetail {
	return &model.CarDetail{
		Car: model.Car{
			ID:             id,
			CategoryID:     1,
			Color:          "blue",
			Model:          "Corolla",
			Make:           "Toyota",
			RegistrationNo: "ABC-123",
			CreatedBy:      7,
		},
		CategoryName: "Sedans",
		CreatorName:  "Alice",
		CreatorEmail: "alice@example.com",
	}
}

func TestCreateCarHandler(t *testing.T) {
	defer restoreCarStubs()

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newCarCtx(e, http.MethodPost, "/", "")
	require.NoError(t, CreateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// missing fields
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newCarCtx(e, http.MethodPost, "/", `{}`)
	require.NoError(t, CreateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "All fields are required")

	// duplicate registration number
	createCar = func(_ context.Context, _ database.DB, _ *model.Car) (*model.Car, error) {
		return nil, store.ErrDuplicate
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPost, "/", carBody)
	require.NoError(t, CreateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Car with this registration number already exists")

	// category does not exist
	createCar = func(_ context.Context, _ database.DB, _ *model.Car) (*model.Car, error) {
		return nil, store.ErrInvalidReference
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPost, "/", carBody)
	require.NoError(t, CreateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid category ID")

	// success returns the populated projection
	var gotCreatedBy int
	createCar = func(_ context.Context, _ database.DB, car *model.Car) (*model.Car, error) {
		gotCreatedBy = car.CreatedBy
		out := *car
		out.ID = 3
		return &out, nil
	}
	getCarDetailByID = func(_ context.Context, _ database.DB, id int) (*model.CarDetail, error) {
		return sampleDetail(id), nil
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPost, "/", carBody)
	require.NoError(t, CreateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 7, gotCreatedBy)
	require.Contains(t, rec.Body.String(), "Sedans")
	require.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestGetCarHandler(t *testing.T) {
	defer restoreCarStubs()

	// non-numeric id
	e := echo.New()
	ctx, rec := newCarCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")
	require.NoError(t, GetCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// not found
	getCarDetailByID = func(_ context.Context, _ database.DB, _ int) (*model.CarDetail, error) {
		return nil, store.ErrNotFound
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")
	require.NoError(t, GetCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Car not found")

	// found
	getCarDetailByID = func(_ context.Context, _ database.DB, id int) (*model.CarDetail, error) {
		return sampleDetail(id), nil
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, GetCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ABC-123")
}

func TestListCarsHandler(t *testing.T) {
	defer restoreCarStubs()

	// defaults: registrationNo ascending, page 1, limit 10
	var gotSort string
	var gotAsc bool
	var gotLimit, gotOffset int
	listCars = func(_ context.Context, _ database.DB, sortKey string, ascending bool, limit, offset int) ([]model.CarDetail, int, error) {
		gotSort, gotAsc, gotLimit, gotOffset = sortKey, ascending, limit, offset
		return []model.CarDetail{*sampleDetail(1)}, 23, nil
	}
	e := echo.New()
	ctx, rec := newCarCtx(e, http.MethodGet, "/", "")
	require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, store.DefaultCarSort, gotSort)
	require.True(t, gotAsc)
	require.Equal(t, 10, gotLimit)
	require.Equal(t, 0, gotOffset)
	require.Contains(t, rec.Body.String(), `"totalCars":23`)

	// explicit sort, descending, paged
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/?sort=model&sortOrder=desc&page=2&limit=5", "")
	require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "model", gotSort)
	require.False(t, gotAsc)
	require.Equal(t, 5, gotLimit)
	require.Equal(t, 5, gotOffset)

	// only exactly "asc" sorts ascending, any other value descends
	for _, order := range []string{"ASC", "Asc", "garbage", "desc"} {
		e = echo.New()
		ctx, rec = newCarCtx(e, http.MethodGet, "/?sortOrder="+order, "")
		require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.False(t, gotAsc, "sortOrder=%s", order)
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/?sortOrder=asc", "")
	require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotAsc)

	// store failure
	listCars = func(_ context.Context, _ database.DB, _ string, _ bool, _, _ int) ([]model.CarDetail, int, error) {
		return nil, 0, errors.New("boom")
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/", "")
	require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// empty page still returns an array, not null
	listCars = func(_ context.Context, _ database.DB, _ string, _ bool, _, _ int) ([]model.CarDetail, int, error) {
		return nil, 0, nil
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodGet, "/", "")
	require.NoError(t, ListCarsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"cars":[]`)
}

func TestUpdateCarHandler(t *testing.T) {
	defer restoreCarStubs()

	owned := func(_ context.Context, _ database.DB, id int) (*model.Car, error) {
		return &model.Car{ID: id, CategoryID: 1, RegistrationNo: "OLD-1", CreatedBy: 7}, nil
	}

	// not found
	getCarByID = func(_ context.Context, _ database.DB, _ int) (*model.Car, error) {
		return nil, store.ErrNotFound
	}
	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newCarCtx(e, http.MethodPut, "/", carBody)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, UpdateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// not the creator
	getCarByID = func(_ context.Context, _ database.DB, id int) (*model.Car, error) {
		return &model.Car{ID: id, CreatedBy: 99}, nil
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPut, "/", carBody)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, UpdateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Forbidden: You are not authorized to edit this car")

	// moving to a missing category
	getCarByID = owned
	updateCar = func(_ context.Context, _ database.DB, _ *model.Car) error {
		return store.ErrInvalidReference
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPut, "/", carBody)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, UpdateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid category ID")

	// success applies every field and returns the populated projection
	var applied model.Car
	getCarByID = owned
	updateCar = func(_ context.Context, _ database.DB, car *model.Car) error {
		applied = *car
		return nil
	}
	getCarDetailByID = func(_ context.Context, _ database.DB, id int) (*model.CarDetail, error) {
		return sampleDetail(id), nil
	}
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCarCtx(e, http.MethodPut, "/", carBody)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, UpdateCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ABC-123", applied.RegistrationNo)
	require.Equal(t, "Toyota", applied.Make)
	require.Contains(t, rec.Body.String(), "Sedans")
}

func TestDeleteCarHandler(t *testing.T) {
	defer restoreCarStubs()

	// not the creator
	getCarByID = func(_ context.Context, _ database.DB, id int) (*model.Car, error) {
		return &model.Car{ID: id, CreatedBy: 99}, nil
	}
	e := echo.New()
	ctx, rec := newCarCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, DeleteCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Forbidden: You are not authorized to delete this car")

	// success
	getCarByID = func(_ context.Context, _ database.DB, id int) (*model.Car, error) {
		return &model.Car{ID: id, CreatedBy: 7}, nil
	}
	deleted := 0
	deleteCar = func(_ context.Context, _ database.DB, id int) error {
		deleted = id
		return nil
	}
	e = echo.New()
	ctx, rec = newCarCtx(e, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")
	require.NoError(t, DeleteCarHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Car deleted successfully")
	require.Equal(t, 3, deleted)
}
