package e2e

import (
	"fmt"
	"strings"
	"time"

	"search-bot/commands"
	"search-bot/contract"
	"search-bot/domain/chat"
	"search-bot/infrastructure/index"
	"search-bot/infrastructure/storage"
	"search-bot/redact"
	"search-bot/runtime"
	"search-bot/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/suite"
)

const deliveryTimeout = 5 * time.Second

// RecordingAdapter is an in-memory chat platform: replies and uploads are
// captured on channels so scenarios can wait for the asynchronous pipeline
// to deliver.
type RecordingAdapter struct {
	Replies chan string
	Uploads chan contract.Artifact
}

func NewRecordingAdapter() *RecordingAdapter {
	return &RecordingAdapter{
		Replies: make(chan string, 16),
		Uploads: make(chan contract.Artifact, 16),
	}
}

func (a *RecordingAdapter) Reply(_ chat.Message, text string) error {
	a.Replies <- text
	return nil
}

func (a *RecordingAdapter) Upload(artifact contract.Artifact) error {
	a.Uploads <- artifact
	return nil
}

// BaseBotSuite assembles the full pipeline in-process: real Badger store,
// real Bluge index, real router. Only the chat platform is replaced by the
// recording adapter.
type BaseBotSuite struct {
	suite.Suite
	Config Config

	badgerDB    *badger.DB
	blugeWriter *bluge.Writer

	Repository storage.MessageRepository
	Ingest     *services.IngestService
	Adapter    *RecordingAdapter
	Controller *runtime.Controller
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseBotSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseBotSuite) SetupTest() {
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	s.Require().NoError(err)
	s.badgerDB = badgerDB
	s.blugeWriter = blugeWriter

	s.Repository = storage.NewMessageRepository(badgerDB, log, nil)
	indexClient := index.NewClient(blugeWriter, log, 25)
	s.Ingest = services.NewIngestService(log, s.Repository, indexClient)
	s.Adapter = NewRecordingAdapter()

	redactor, err := redact.NewRedactor(splitTerms(s.Config.RedactedTerms), '*')
	s.Require().NoError(err)

	errorHandler := services.NewErrorHandler(log)
	pipeline := services.NewSearchService(log, indexClient, s.Adapter, errorHandler, redactor)

	s.Controller = runtime.NewController(log, 16, func(msg chat.Message) {
		s.Require().NoError(s.Ingest.Ingest(msg))
	})
	commands.NewSearchCommand(log, pipeline).Configure(s.Controller)
}

func (s *BaseBotSuite) TearDownTest() {
	database.CleanupDB(s.badgerDB, s.blugeWriter)
}

// Step prints a colorized header so scenario phases stand out in logs
func (s *BaseBotSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Say pushes one message through the router, exactly as the listener would.
func (s *BaseBotSuite) Say(user, text string) {
	s.Controller.Dispatch(chat.Message{
		Text:    text,
		User:    user,
		Team:    "e2e",
		Channel: "general",
		At:      time.Now().UTC(),
	})
}

// WaitUpload blocks until the pipeline delivers an artifact or the timeout
// elapses.
func (s *BaseBotSuite) WaitUpload() contract.Artifact {
	select {
	case artifact := <-s.Adapter.Uploads:
		if s.Config.DebugJSON {
			s.T().Logf("ARTIFACT %s:\n%s", artifact.Filename, artifact.Content)
		}
		return artifact
	case <-time.After(deliveryTimeout):
		s.FailNow("no artifact delivered within " + deliveryTimeout.String())
		return contract.Artifact{}
	}
}

// WaitReply blocks until the pipeline posts a reply or the timeout elapses.
func (s *BaseBotSuite) WaitReply() string {
	select {
	case reply := <-s.Adapter.Replies:
		return reply
	case <-time.After(deliveryTimeout):
		s.FailNow("no reply posted within " + deliveryTimeout.String())
		return ""
	}
}

func splitTerms(raw string) []string {
	var terms []string
	for _, term := range strings.Split(raw, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
