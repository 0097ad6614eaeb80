// Package main is the entry point for the Movie API Service.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/tscholl44/movie-api/internal/movieapi"
)

func main() {
	movieapi.NewApp().Run()
}
