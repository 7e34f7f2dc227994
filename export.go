package main

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"

	"github.com/roffe/speedo/pkg/fontface"
	"github.com/roffe/speedo/pkg/raster"
	"github.com/roffe/speedo/pkg/speedometer"
	"github.com/roffe/speedo/pkg/theme"
)

const exportSize = 600

// exportPNG asks for a file name and renders a snapshot of cfg at value
// into it. The snapshot is its own gauge so the UI one is never touched
// off the Fyne goroutine.
func exportPNG(cfg speedometer.Config, value float64) {
	go func() {
		filename, err := sdialog.File().Filter("PNG image", "png").Title("Export gauge").Save()
		if err != nil {
			if err == sdialog.ErrCancelled {
				return
			}
			fyne.LogError("Error selecting file", err)
			return
		}
		fonts, err := fontface.New()
		if err != nil {
			fyne.LogError("Error loading font", err)
			return
		}
		defer fonts.Close()
		g, err := speedometer.New(fonts, speedometer.WithConfig(cfg), speedometer.WithValue(value))
		if err != nil {
			fyne.LogError("Error creating gauge", err)
			return
		}
		if err := raster.SavePNG(filename, g, fonts, exportSize, theme.Background); err != nil {
			fyne.LogError("Error exporting gauge", err)
			return
		}
		log.Println("exported", filename)
		if err := open.Run(filename); err != nil {
			log.Println(err)
		}
	}()
}
