package main

import (
	"context"
	"flag"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"

	"github.com/roffe/speedo/pkg/colors"
	"github.com/roffe/speedo/pkg/ebus"
	"github.com/roffe/speedo/pkg/gaugeconfig"
	"github.com/roffe/speedo/pkg/source"
	"github.com/roffe/speedo/pkg/theme"
	"github.com/roffe/speedo/pkg/widgets/speedo"
)

const nudge = 8

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	configFile := flag.String("config", "", "config file (default: "+gaugeconfig.CONFFILE+" in the config folder)")
	port := flag.String("port", "", "serial port to read speed from, overrides the config file")
	flag.Parse()

	file, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	opts, err := file.Options()
	if err != nil {
		log.Fatal(err)
	}

	a := app.NewWithID("com.roffe.speedo")
	a.Settings().SetTheme(&theme.SpeedoTheme{})

	sp, err := speedo.New(append(opts, speedo.PreferenceOptions(a.Preferences())...)...)
	if err != nil {
		log.Fatal(err)
	}

	bus := ebus.New(ebus.DefaultTTL)
	defer bus.Close()
	unsubscribe := sp.Bind(bus, ebus.TopicSpeed)
	defer unsubscribe()

	if *port != "" {
		file.Serial.Port = *port
	}
	if file.Serial.Port != "" {
		src := startSerial(file.Serial, bus)
		if src != nil {
			defer src.Stop()
		}
	}

	mw := a.NewWindow("Speedometer")
	mw.SetContent(container.NewBorder(nil, buttons(mw, sp, bus), nil, nil, sp))
	mw.SetOnClosed(func() {
		speedo.SavePreferences(a.Preferences(), sp.Gauge())
	})
	mw.Resize(fyne.NewSize(420, 480))
	mw.ShowAndRun()
}

func loadConfig(path string) (*gaugeconfig.File, error) {
	if path != "" {
		return gaugeconfig.Load(path)
	}
	return gaugeconfig.LoadDefault()
}

func startSerial(cfg gaugeconfig.Serial, bus *ebus.Bus) *source.Serial {
	var opts []source.SerialOption
	if cfg.Baud > 0 {
		opts = append(opts, source.WithBaudRate(cfg.Baud))
	}
	if cfg.Scale != 0 {
		opts = append(opts, source.WithScale(cfg.Scale))
	}
	src := source.NewSerial(cfg.Port, ebus.TopicSpeed, bus, func(s string) { log.Println(s) }, opts...)
	if err := src.Start(context.Background()); err != nil {
		log.Printf("serial source: %v", err)
		if ports, perr := source.Ports(); perr == nil {
			log.Printf("available ports: %v", ports)
		}
		return nil
	}
	return src
}

func buttons(mw fyne.Window, sp *speedo.Speedo, bus *ebus.Bus) *fyne.Container {
	publish := func(delta float64) {
		if err := bus.Publish(ebus.TopicSpeed, sp.Value()+delta); err != nil {
			log.Println("publish:", err)
		}
	}
	decrease := widget.NewButtonWithIcon("", fynetheme.MoveDownIcon(), func() { publish(-nudge) })
	increase := widget.NewButtonWithIcon("", fynetheme.MoveUpIcon(), func() { publish(nudge) })

	pickColor := widget.NewButtonWithIcon("Color", fynetheme.ColorPaletteIcon(), func() {
		picker := colorpicker.New(250, colorpicker.StyleHueCircle)
		picker.SetOnChanged(func(c color.Color) {
			cfg := sp.Gauge().Config()
			cfg.OnColor = colors.ToRGBA(c)
			if err := sp.SetConfig(cfg); err != nil {
				fyne.LogError("set on color", err)
			}
		})
		var modal *widget.PopUp
		modal = widget.NewModalPopUp(container.NewVBox(
			picker,
			widget.NewButton("Close", func() {
				modal.Hide()
			}),
		), mw.Canvas())
		modal.Show()
	})

	export := widget.NewButtonWithIcon("Export", fynetheme.DocumentSaveIcon(), func() {
		exportPNG(sp.Gauge().Config(), sp.Value())
	})

	return container.NewHBox(decrease, increase, layout.NewSpacer(), pickColor, export)
}
