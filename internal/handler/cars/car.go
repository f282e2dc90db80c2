// File: internal/handler/cars/car.go
package cars

import (
	"errors"
	"net/http"
	"strconv"

	"carhub/internal/api"
	"carhub/internal/database"
	"carhub/internal/middleware"
	"carhub/internal/model"
	"carhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createCar        = store.CreateCar
	getCarByID       = store.GetCarByID
	getCarDetailByID = store.GetCarDetailByID
	listCars         = store.ListCars
	updateCar        = store.UpdateCar
	deleteCar        = store.DeleteCar
)

// CreateCarHandler 建立車輛，回應帶出展開後的分類與建立者資料
// @Summary     Create a car
// @Tags        cars
// @Accept      json
// @Produce     json
// @Param       request body api.CarRequest true "車輛資料"
// @Success     201 {object} api.CarResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cars [post]
func CreateCarHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		var req api.CarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "All fields are required"})
		}

		car, err := createCar(c.Request().Context(), db, &model.Car{
			CategoryID:     req.Category,
			Color:          req.Color,
			Model:          req.Model,
			Make:           req.Make,
			RegistrationNo: req.RegistrationNo,
			CreatedBy:      user.ID,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Car with this registration number already exists"})
			case errors.Is(err, store.ErrInvalidReference):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid category ID"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error creating car"})
			}
		}

		detail, err := getCarDetailByID(c.Request().Context(), db, car.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error creating car"})
		}
		return c.JSON(http.StatusCreated, api.NewCarResponse(detail))
	}
}

// GetCarHandler 取得單一車輛
// @Summary     Get a car by ID
// @Tags        cars
// @Produce     json
// @Param       id path int true "車輛 ID"
// @Success     200 {object} api.CarResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cars/{id} [get]
func GetCarHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car id"})
		}

		detail, err := getCarDetailByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error fetching car"})
		}

		return c.JSON(http.StatusOK, api.NewCarResponse(detail))
	}
}

// ListCarsHandler 分頁列出車輛並依白名單欄位排序，不需認證
// @Summary     List cars
// @Tags        cars
// @Produce     json
// @Param       page      query int    false "頁碼，預設 1"
// @Param       limit     query int    false "每頁筆數，預設 10"
// @Param       sort      query string false "排序鍵，預設 registrationNo"
// @Param       sortOrder query string false "asc 或 desc，預設 asc"
// @Success     200 {object} api.CarListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars [get]
func ListCarsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params api.CarListParams
		if err := c.Bind(&params); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		params.Normalize()

		sortKey := params.Sort
		if sortKey == "" {
			sortKey = store.DefaultCarSort
		}
		// 只有 "asc" 升冪，其餘值一律降冪；未給時預設升冪
		ascending := params.SortOrder == "" || params.SortOrder == "asc"

		cars, total, err := listCars(c.Request().Context(), db, sortKey, ascending, params.Limit, params.Offset())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error fetching cars"})
		}

		resp := api.CarListResponse{
			Cars:      make([]api.CarResponse, 0, len(cars)),
			TotalCars: total,
		}
		for i := range cars {
			resp.Cars = append(resp.Cars, api.NewCarResponse(&cars[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// UpdateCarHandler 覆寫車輛全部欄位，僅建立者可操作
// @Summary     Update a car
// @Tags        cars
// @Accept      json
// @Produce     json
// @Param       id      path int            true "車輛 ID"
// @Param       request body api.CarRequest true "車輛資料"
// @Success     200 {object} api.CarResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cars/{id} [put]
func UpdateCarHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car id"})
		}

		var req api.CarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "All fields are required"})
		}

		car, err := getCarByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating car"})
		}
		if car.CreatedBy != user.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You are not authorized to edit this car"})
		}

		car.CategoryID = req.Category
		car.Color = req.Color
		car.Model = req.Model
		car.Make = req.Make
		car.RegistrationNo = req.RegistrationNo

		if err := updateCar(c.Request().Context(), db, car); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Car with this registration number already exists"})
			case errors.Is(err, store.ErrInvalidReference):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid category ID"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Car not found"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating car"})
			}
		}

		detail, err := getCarDetailByID(c.Request().Context(), db, car.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error updating car"})
		}
		return c.JSON(http.StatusOK, api.NewCarResponse(detail))
	}
}

// DeleteCarHandler 硬刪除車輛，僅建立者可操作
// @Summary     Delete a car
// @Tags        cars
// @Produce     json
// @Param       id path int true "車輛 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cars/{id} [delete]
func DeleteCarHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid car id"})
		}

		car, err := getCarByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting car"})
		}
		if car.CreatedBy != user.ID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Forbidden: You are not authorized to delete this car"})
		}

		if err := deleteCar(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Car not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error deleting car"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Car deleted successfully"})
	}
}
