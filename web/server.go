package web

import (
	"bytes"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gitlab.com/aoterocom/AOBankroll/database"
	"gitlab.com/aoterocom/AOBankroll/helpers"
	"gitlab.com/aoterocom/AOBankroll/models"
	"gitlab.com/aoterocom/AOBankroll/models/analytics"
	"gitlab.com/aoterocom/AOBankroll/render"
	"gitlab.com/aoterocom/AOBankroll/services"
	"html/template"
	"strconv"
	"time"
)

type Server struct {
	app        *fiber.App
	listen     string
	runService *services.RunService
	history    *database.DBService
	defaults   models.SimulationForm
	limits     models.Limits
	svg        render.SVGRenderer
}

type pageData struct {
	Form        models.SimulationForm
	Error       string
	Chart       template.HTML
	Summary     analytics.RunSummary
	RuinPct     string
	FinalMean   string
	FinalMedian string
	FinalStdDev string
}

// NewServer builds the web front end. history may be nil when recording is disabled.
func NewServer(runService *services.RunService, history *database.DBService, defaults models.SimulationForm,
	limits models.Limits, listen string, readTimeout time.Duration, writeTimeout time.Duration) *Server {
	s := &Server{
		listen:     listen,
		runService: runService,
		history:    history,
		defaults:   defaults,
		limits:     limits,
		svg:        render.NewSVGRenderer(),
	}

	s.app = fiber.New(fiber.Config{
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/", s.index)
	s.app.Post("/simulate", s.simulateForm)
	s.app.Get("/chart.svg", s.chart)

	api := s.app.Group("/api")
	api.Get("/simulate", s.simulateAPI)
	if history != nil {
		api.Get("/runs", s.runs)
		api.Get("/runs/:id", s.run)
	}

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	helpers.Logger.Infoln("Web simulator listening on " + s.listen)
	return s.app.Listen(s.listen)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) index(c *fiber.Ctx) error {
	return s.page(c, fiber.StatusOK, pageData{Form: s.defaults})
}

func (s *Server) simulateForm(c *fiber.Ctx) error {
	form := models.SimulationForm{}
	if err := c.BodyParser(&form); err != nil {
		return s.page(c, fiber.StatusBadRequest, pageData{Form: form, Error: err.Error()})
	}

	config, err := form.ToConfigWithin(s.limits)
	if err != nil {
		return s.page(c, fiber.StatusBadRequest, pageData{Form: form, Error: err.Error()})
	}
	result, summary, err := s.runService.Run(config)
	if err != nil {
		return s.page(c, fiber.StatusBadRequest, pageData{Form: form, Error: err.Error()})
	}

	var chart bytes.Buffer
	if err := s.svg.Render(&chart, result); err != nil {
		return err
	}

	return s.page(c, fiber.StatusOK, pageData{
		Form:        form,
		Chart:       template.HTML(chart.String()),
		Summary:     summary,
		RuinPct:     render.Percent(summary.RuinProbability),
		FinalMean:   render.Money(summary.FinalMean),
		FinalMedian: render.Money(summary.FinalMedian),
		FinalStdDev: render.Money(summary.FinalStdDev),
	})
}

func (s *Server) page(c *fiber.Ctx, status int, data pageData) error {
	var body bytes.Buffer
	if err := pageTemplate.Execute(&body, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(body.Bytes())
}

// queryRun parses the query on top of the default form and honors an optional seed
func (s *Server) queryRun(c *fiber.Ctx) (models.SimulationResult, analytics.RunSummary, error) {
	form := s.defaults
	if err := c.QueryParser(&form); err != nil {
		return models.SimulationResult{}, analytics.RunSummary{}, err
	}
	config, err := form.ToConfigWithin(s.limits)
	if err != nil {
		return models.SimulationResult{}, analytics.RunSummary{}, err
	}

	if seedParam := c.Query("seed"); seedParam != "" {
		seed, err := strconv.ParseInt(seedParam, 10, 64)
		if err != nil {
			return models.SimulationResult{}, analytics.RunSummary{}, errors.New("seed must be an integer")
		}
		return s.runService.RunWithSeed(config, seed)
	}
	return s.runService.Run(config)
}

func (s *Server) simulateAPI(c *fiber.Ctx) error {
	result, summary, err := s.queryRun(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"result":  result,
		"summary": summary,
	})
}

func (s *Server) chart(c *fiber.Ctx) error {
	result, _, err := s.queryRun(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	var chart bytes.Buffer
	if err := s.svg.Render(&chart, result); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(chart.Bytes())
}

func (s *Server) runs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	runs, err := s.history.RecentRuns(limit)
	if err != nil {
		helpers.Logger.Errorln("web: " + err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(runs)
}

func (s *Server) run(c *fiber.Ctx) error {
	run, err := s.history.GetRun(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(run)
}
