package controller

import "github.com/labstack/echo/v4"

type EntityController interface {
	List(c echo.Context) error
	Save(c echo.Context) error
	GetByName(c echo.Context) error
	UpdateChannel(c echo.Context) error
}
