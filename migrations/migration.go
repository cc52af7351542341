package main

import (
	"sweet-shop/infra"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := infra.Migrate(db); err != nil {
		panic("Failed to migrate database")
	}
}
