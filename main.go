//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/umbra/appcomponents"
	"github.com/vcrobe/umbra/dom/jsdom"
	"github.com/vcrobe/umbra/router"
	"github.com/vcrobe/umbra/runtime"
)

// Demo bootstrap. The wasm binary is loaded at the end of the document,
// so the structure is ready by the time main runs.
func main() {
	// 1. Create the rendering host and the tag registry.
	host := jsdom.NewHost()
	reg := runtime.NewRegistry(host)
	reg.RegisterComponents(appcomponents.Definitions()...)

	// 2. Locate the mount element. The router owns it from here on.
	mount := host.QueryDocument("#app")
	if mount == nil {
		panic("no #app element to mount into")
	}

	// 3. Create the Router and define routes - paths map to view factories.
	appRouter := router.New(mount, nil)
	navigate := appRouter.Navigate

	appRouter.Handle("/", func(params map[string]string) (runtime.View, error) {
		return appcomponents.NewHomePage(reg, navigate)
	})

	appRouter.Handle("/about", func(params map[string]string) (runtime.View, error) {
		return appcomponents.NewAboutPage(reg, navigate)
	})

	appRouter.Handle("/counter", func(params map[string]string) (runtime.View, error) {
		return appcomponents.NewCounterPage(reg, navigate)
	})

	// 4. Handle unmatched paths with a fallback view.
	appRouter.HandleNotFound(func(params map[string]string) (runtime.View, error) {
		return appcomponents.NewNotFoundPage(reg, params["path"])
	})

	// 5. Start the Router - this resolves the initial URL and mounts the
	// first view.
	if err := appRouter.Start(); err != nil {
		panic("Error starting router: " + err.Error())
	}

	// Keep the Go program running.
	select {}
}
