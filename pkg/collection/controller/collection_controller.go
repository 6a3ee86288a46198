package controller

import "github.com/labstack/echo/v4"

type CollectionController interface {
	List(c echo.Context) error
	GetByName(c echo.Context) error
	Columns(c echo.Context) error
	Charts(c echo.Context) error
	LegacyCounts(c echo.Context) error
	Import(c echo.Context) error
}
