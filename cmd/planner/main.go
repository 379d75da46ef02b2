// Command planner ejecuta los cálculos de planificación sobre archivos JSON, sin base de datos.
//
//	planner forecast --input historial.json --model exponential_smoothing --periods 14
//	planner simulate --input escenario.json
//	planner transfers --input ubicaciones.json --product leche
//	planner invalidate-cache --company <uuid>
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invorya-planning/internal/application/planning"
	"github.com/jhoicas/invorya-planning/pkg/logger"
)

func main() {
	// .env es opcional; solo invalidate-cache lee configuración.
	_ = godotenv.Load(".env")

	log := logger.New(logger.Config{Env: "development", Level: os.Getenv("LOG_LEVEL"), Service: "planner"})
	app := newApp(os.Stdin, os.Stdout, log.Component("planner"))
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("planner")
	}
}

func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Archivo JSON de entrada (- o vacío = stdin)",
	}
}

func todayFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "today",
		Usage: "Fecha de referencia YYYY-MM-DD (defecto: hoy)",
	}
}

func newApp(in io.Reader, out io.Writer, log zerolog.Logger) *cli.App {
	defaults := planning.DefaultSettings()
	return &cli.App{
		Name:   "planner",
		Usage:  "Pronóstico, simulación y traslados de inventario sobre archivos JSON",
		Reader: in,
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "forecast",
				Usage: "Pronostica la demanda diaria a partir de un historial [{date, quantity}]",
				Flags: []cli.Flag{
					inputFlag(),
					todayFlag(),
					&cli.StringFlag{Name: "model", Value: "moving_average", Usage: "moving_average | exponential_smoothing"},
					&cli.IntFlag{Name: "window", Value: defaults.Window, Usage: "Ventana del promedio móvil"},
					&cli.Float64Flag{Name: "alpha", Value: defaults.Alpha, Usage: "Alpha del suavizamiento exponencial"},
					&cli.IntFlag{Name: "periods", Value: defaults.ForecastPeriods, Usage: "Días a pronosticar"},
				},
				Action: runForecast,
			},
			{
				Name:  "simulate",
				Usage: "Compara el escenario actual con uno de mayor demanda o lead time",
				Flags: []cli.Flag{inputFlag()},
				Action: func(c *cli.Context) error {
					return runSimulate(c, log)
				},
			},
			{
				Name:  "transfers",
				Usage: "Sugiere traslados entre ubicaciones para un producto",
				Flags: []cli.Flag{
					inputFlag(),
					&cli.StringFlag{Name: "product", Required: true, Usage: "ID del producto"},
					&cli.Float64Flag{Name: "z-score", Value: defaults.ZScore, Usage: "Factor de nivel de servicio"},
				},
				Action: runTransfers,
			},
			{
				Name:  "invalidate-cache",
				Usage: "Borra los pronósticos en caché de una empresa",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "company", Required: true, Usage: "ID de la empresa", EnvVars: []string{"COMPANY_ID"}},
				},
				Action: func(c *cli.Context) error {
					return runInvalidateCache(c, log)
				},
			},
		},
	}
}
