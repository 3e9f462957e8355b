package server

import (
	"context"
	goerrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"

	_ "showlink/docs"
	"showlink/internal/apperr"
	"showlink/internal/config"
	"showlink/internal/consumer"
	"showlink/internal/dao"
	"showlink/internal/gamechat"
	"showlink/internal/gamesession"
	"showlink/internal/model"
	"showlink/internal/playfab"
	"showlink/internal/utils"
	"showlink/pkg/log"
)

// GameChat is the part of the GameChat API the server uses.
type GameChat interface {
	gamesession.Searcher
	SearchGameSessions(ctx context.Context, req *dao.SearchSessionsRequest) (*gamesession.Result, error)
	GetGameSessionById(ctx context.Context, id string) (*model.GameSession, error)
	LoginAndReturnSession(ctx context.Context, email, password string) (*model.GameChatLogin, error)
}

// PlayFab is the part of the PlayFab API the server uses.
type PlayFab interface {
	LoginWithEmail(ctx context.Context, email, password string) (*model.PlayFabLogin, error)
	ForgotPassword(ctx context.Context, email string) error
	GetPlayerProfile(ctx context.Context, sessionToken, playFabId string, extra *model.ProfileConstraints) (*model.PlayerProfile, error)
	UpdateAvatarUrl(ctx context.Context, playFabId, imageUrl string) error
	GetFriendsList(ctx context.Context, sessionToken string) ([]model.PlayFabFriend, error)
	GetProducerPermissions(ctx context.Context, sessionToken string) (model.ProducerPermissions, error)
	SubmitForm(ctx context.Context, sessionToken string, form any) error
	AddSubscriber(ctx context.Context, entityToken string)
}

type LeadPublisher interface {
	PublishLead(lead *dao.Lead) error
}

type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error
}

type minioStore struct {
	cli    *minio.Client
	bucket string
}

func (m *minioStore) Upload(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error {
	return utils.UploadObjectToMinio(ctx, m.cli, m.bucket, objectPath, r, size, contentType)
}

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	gameChat   GameChat
	playFab    PlayFab
	publisher  LeadPublisher
	objects    ObjectStore
	now        func() time.Time
	intN       func(n int) int
	logger     *logrus.Entry
}

type Option func(*Server)

func WithGameChat(g GameChat) Option { return func(s *Server) { s.gameChat = g } }

func WithPlayFab(p PlayFab) Option { return func(s *Server) { s.playFab = p } }

func WithPublisher(p LeadPublisher) Option { return func(s *Server) { s.publisher = p } }

func WithObjectStore(o ObjectStore) Option { return func(s *Server) { s.objects = o } }

func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithIntN fixes the random source of the random session search.
func WithIntN(intN func(n int) int) Option { return func(s *Server) { s.intN = intN } }

func NewServer(ctx context.Context, conf *config.Config, options ...Option) (*Server, error) {
	s := &Server{
		conf:   conf,
		now:    time.Now,
		logger: log.GetLogger(ctx),
	}
	for _, option := range options {
		option(s)
	}

	if s.gameChat == nil {
		s.gameChat = gamechat.NewClient(conf.GameChat, s.logger.WithField("component", "gamechat"))
	}
	if s.playFab == nil {
		s.playFab = playfab.NewClient(conf.PlayFab, s.logger.WithField("component", "playfab"))
	}
	if s.objects == nil {
		if cli, err := utils.NewMinioClient(&conf.S3); err != nil {
			s.logger.Warnf("avatar upload disabled: %v", err)
		} else {
			s.objects = &minioStore{cli: cli, bucket: conf.S3.Bucket}
		}
	}
	if s.publisher == nil && conf.NSQ.NSQDAddr != "" {
		p, err := consumer.NewPublisher(conf.NSQ.NSQDAddr, conf.NSQ.Topic, s.logger.WithField("component", "publisher"))
		if err != nil {
			return nil, err
		}
		s.publisher = p
	}

	router := s.SetUpRouter()
	pprof.Register(router)
	s.httpServer = &http.Server{
		Addr:    conf.Addr,
		Handler: router,
	}

	return s, nil
}

func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(log.HttpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Header(log.HttpXRequestId, requestId)
		c.Request = c.Request.WithContext(log.WithRequestId(c.Request.Context(), requestId))
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		c.Next()
		latency := time.Since(t)
		status := c.Writer.Status()

		log.GetLogger(c.Request.Context()).Info("ip: ", c.ClientIP(), " method: ", c.Request.Method, " path: ",
			c.Request.URL.Path, " status: ", status, " latency: ", latency)
	}
}

func (s *Server) Start() {
	var err error
	if s.conf.SSLCert != "" && s.conf.SSLKey != "" {
		logrus.Infof("start https server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServeTLS(s.conf.SSLCert, s.conf.SSLKey)
	} else {
		logrus.Infof("start http server on %s", s.conf.Addr)
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !goerrors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}
	if p, ok := s.publisher.(interface{ Stop() }); ok {
		p.Stop()
	}
}

func (s *Server) writeError(c *gin.Context, code int, err error) {
	if code >= http.StatusInternalServerError {
		log.GetLogger(c.Request.Context()).WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(code, dao.Fail(err.Error()))
}

// writeAppError reports err with the status it carries.
func (s *Server) writeAppError(c *gin.Context, err error) {
	s.writeError(c, apperr.StatusCode(err), err)
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("statuslist", func(fl validator.FieldLevel) bool {
			statuses := gamesession.SplitStatuses(fl.Field().String())
			if len(statuses) == 0 {
				return false
			}
			for _, status := range statuses {
				if !gamesession.IsValidStatus(status) {
					return false
				}
			}
			return true
		})
		v.RegisterValidation("gamestatus", func(fl validator.FieldLevel) bool {
			return gamesession.IsValidStatus(fl.Field().String())
		})
		v.RegisterStructValidation(submissionFormValidation, dao.SubmissionFormRequest{})
	}
}

// submissionFormValidation requires a name and a message on contact forms.
func submissionFormValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dao.SubmissionFormRequest)
	if req.Type != dao.SubmissionContact {
		return
	}
	if req.FormData.Name == "" {
		sl.ReportError(req.FormData.Name, "FormData.Name", "name", "required", "")
	}
	if req.FormData.Message == "" {
		sl.ReportError(req.FormData.Message, "FormData.Message", "message", "required", "")
	}
}
