package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"news_server/internal/config"
	"news_server/internal/handler"
	"news_server/internal/https_server"
	"news_server/internal/infrastructure/captcha"
	"news_server/internal/model"
	"news_server/internal/service"
	"news_server/internal/testutil"
	"news_server/pkg/constants"
	"news_server/pkg/errorx"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("zh"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type server struct {
	engine  *gin.Engine
	mr      *miniredis.Miniredis
	db      *gorm.DB
	sms     *testutil.FakeSms
	captcha *testutil.FakeCaptcha
}

func newServer(t *testing.T) *server {
	t.Helper()
	cache, mr := testutil.NewCache(t)
	repos, db := testutil.NewRepos(t)
	smsSvc := &testutil.FakeSms{}
	gen := &testutil.FakeCaptcha{Text: "aB3d", Image: []byte{0xff, 0xd8, 0xff, 0xe0}}

	svc := service.NewServices(service.Deps{
		Repos:   repos,
		Cache:   cache,
		Sms:     smsSvc,
		Captcha: gen,
		Config:  config.PassportConfig{ImageCodeExpires: 300, SmsCodeExpires: 300},
	})
	handlers := handler.NewHandlers(svc, handler.HealthDeps{Mysql: repos, Redis: cache})
	conf := &config.Config{
		SessionConfig: config.SessionConfig{Name: "session", Secret: "test-secret", MaxAge: 3600},
	}
	engine, err := https_server.Init(handlers, conf)
	if err != nil {
		t.Fatalf("init engine: %v", err)
	}
	// 读取当前 session，用于校验注册后写入的登录状态
	engine.GET("/session", func(c *gin.Context) {
		session := sessions.Default(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":   session.Get(constants.SESSION_USER_ID),
			"mobile":    session.Get(constants.SESSION_MOBILE),
			"nick_name": session.Get(constants.SESSION_NICK_NAME),
		})
	})
	return &server{
		engine:  engine,
		mr:      mr,
		db:      db,
		sms:     smsSvc,
		captcha: gen,
	}
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.ResponseData {
	t.Helper()
	var rsp handler.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &rsp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return rsp
}

func TestImageCodeRequiresID(t *testing.T) {
	s := newServer(t)
	if w := s.do(http.MethodGet, "/image_code", nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/image_code?imageCodeId=", nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for empty id got %d", w.Code)
	}
}

func TestImageCodeReturnsJpeg(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/image_code?imageCodeId=abc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != captcha.ContentType {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), s.captcha.Image) {
		t.Fatalf("unexpected body")
	}
	if got, _ := s.mr.Get("ImageCodeId_abc"); got != "aB3d" {
		t.Fatalf("expected staged text got %q", got)
	}
}

func TestImageCodeCacheDown(t *testing.T) {
	s := newServer(t)
	s.mr.Close()
	if w := s.do(http.MethodGet, "/image_code?imageCodeId=abc", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}
}

func TestSmsCodeParamErrors(t *testing.T) {
	s := newServer(t)
	bodies := []any{
		nil,
		map[string]string{"mobile": "13800000000", "image_code": "aB3d"},
		map[string]string{"mobile": "12345", "image_code": "aB3d", "image_code_id": "abc"},
		map[string]string{"mobile": "138000000001", "image_code": "aB3d", "image_code_id": "abc"},
	}
	for _, body := range bodies {
		w := s.do(http.MethodPost, "/sms_code", body)
		if rsp := decode(t, w); rsp.Errno != errorx.CodeParamErr {
			t.Errorf("%v: expected PARAMERR got %+v", body, rsp)
		}
	}
	if len(s.sms.Sent) != 0 {
		t.Fatalf("no sms may be sent on bad params")
	}
}

func TestSmsCodeUnknownImageCode(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/sms_code", map[string]string{
		"mobile": "13800000000", "image_code": "aB3d", "image_code_id": "never-issued",
	})
	if rsp := decode(t, w); rsp.Errno != errorx.CodeNoData {
		t.Fatalf("expected NODATA got %+v", rsp)
	}
}

func TestRegisterWrongSmsCode(t *testing.T) {
	s := newServer(t)
	_ = s.mr.Set("SMS_13800000000", "123456")

	w := s.do(http.MethodPost, "/register", map[string]string{
		"mobile": "13800000000", "smscode": "654321", "password": "secret123",
	})
	if rsp := decode(t, w); rsp.Errno != errorx.CodeDataError {
		t.Fatalf("expected DATAERR got %+v", rsp)
	}
	if w.Header().Get("Set-Cookie") != "" {
		t.Fatalf("session must not be written on failure")
	}
}

func TestRegisterFlow(t *testing.T) {
	s := newServer(t)

	if w := s.do(http.MethodGet, "/image_code?imageCodeId=flow", nil); w.Code != http.StatusOK {
		t.Fatalf("image_code: %d", w.Code)
	}
	text, err := s.mr.Get("ImageCodeId_flow")
	if err != nil {
		t.Fatalf("read image code: %v", err)
	}

	w := s.do(http.MethodPost, "/sms_code", map[string]string{
		"mobile": "13800000000", "image_code": text, "image_code_id": "flow",
	})
	if rsp := decode(t, w); rsp.Errno != errorx.CodeOK || rsp.Errmsg != "发送成功" {
		t.Fatalf("sms_code: %+v", rsp)
	}
	sent, ok := s.sms.Last()
	if !ok {
		t.Fatalf("expected sms to be sent")
	}
	code, err := s.mr.Get("SMS_13800000000")
	if err != nil || code != sent.Code {
		t.Fatalf("staged sms code %q, %v, want %q", code, err, sent.Code)
	}

	w = s.do(http.MethodPost, "/register", map[string]string{
		"mobile": "13800000000", "smscode": code, "password": "secret123",
	})
	if rsp := decode(t, w); rsp.Errno != errorx.CodeOK {
		t.Fatalf("register: %+v", rsp)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	sw := httptest.NewRecorder()
	s.engine.ServeHTTP(sw, req)
	var sess struct {
		UserID   uint   `json:"user_id"`
		Mobile   string `json:"mobile"`
		NickName string `json:"nick_name"`
	}
	if err := json.Unmarshal(sw.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session %q: %v", sw.Body.String(), err)
	}

	var user model.UserInfo
	if err := s.db.Where("mobile = ?", "13800000000").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if sess.UserID != user.ID || sess.Mobile != "13800000000" || sess.NickName != "13800000000" {
		t.Fatalf("unexpected session %+v for user %d", sess, user.ID)
	}

	var n int64
	if err := s.db.Model(&model.UserInfo{}).Where("mobile = ?", "13800000000").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one user got %d", n)
	}

	// 同一手机号再次注册违反唯一索引
	w = s.do(http.MethodPost, "/register", map[string]string{
		"mobile": "13800000000", "smscode": code, "password": "secret123",
	})
	if rsp := decode(t, w); rsp.Errno != errorx.CodeDBError {
		t.Fatalf("expected DBERR on duplicate got %+v", rsp)
	}
}
