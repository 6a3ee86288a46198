package controller

import "github.com/labstack/echo/v4"

type DomainController interface {
	Mapping(c echo.Context) error
}
