package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"boletoapi/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/", homeHandler)
	r.GET("/health", healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)

	authGroup := r.Group("", jwtAuthMiddleware())
	authGroup.GET("/usuarios/me", meHandler)
	authGroup.GET("/boletos", listBoletosHandler)
	authGroup.GET("/boletos/:id", getBoletoHandler)

	adminGroup := authGroup.Group("", requireAdmin())
	adminGroup.POST("/boletos", createBoletoHandler)
	adminGroup.PUT("/boletos/:id", putBoletoHandler)
	adminGroup.PATCH("/boletos/:id", patchBoletoHandler)
	adminGroup.DELETE("/boletos/:id", deleteBoletoHandler)
	adminGroup.POST("/importar-boletos-csv", importCSVHandler)
	adminGroup.POST("/importar-boletos-txt", importTXTHandler)
	adminGroup.GET("/admin/boletos", adminListBoletosHandler)
	adminGroup.POST("/admin/documentos", createDocumentoHandler)
	adminGroup.GET("/admin/documentos", listDocumentosHandler)
}

func homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "API de boletos funcionando"})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)})
}

func registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", ErrValidation, err.Error()))
		return
	}
	user, err := registerUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// loginHandler takes form-encoded username (the e-mail) and password and
// returns a bearer token. Throttled per client IP before touching the DB.
func loginHandler(c *gin.Context) {
	if !loginLimiter.Allow(c.Request.Context(), c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "muitas tentativas, aguarde"})
		return
	}
	email := c.PostForm("username")
	senha := c.PostForm("password")
	if email == "" || senha == "" {
		respondError(c, fmt.Errorf("%w: username e password são obrigatórios", ErrValidation))
		return
	}
	user, err := authenticate(email, senha)
	if err != nil {
		loginFailures.Inc()
		respondError(c, err)
		return
	}
	token, err := createAccessToken(cfg, user.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// orderColumn maps an order_by value to a column; anything unrecognized
// silently falls back to vencimento.
func orderColumn(key string) string {
	switch key {
	case "valor", "status", "cpf_cnpj":
		return key
	default:
		return "vencimento"
	}
}

func parsePagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return skip, limit
}

// listBoletosHandler returns a page of the caller's own boletos, optionally
// filtered by a free-text status match.
func listBoletosHandler(c *gin.Context) {
	user := currentUser(c)
	skip, limit := parsePagination(c)

	q := db.Model(&models.Boleto{}).Where("cpf_cnpj = ?", user.CpfCnpj)
	if kw := c.Query("status"); kw != "" {
		q = q.Where("status ILIKE ?", "%"+kw+"%")
	}
	var boletos []models.Boleto
	if err := q.Order(orderColumn(c.DefaultQuery("order_by", "vencimento"))).
		Offset(skip).Limit(limit).Find(&boletos).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boletos)
}

func findBoleto(idParam string) (*models.Boleto, error) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: id inválido", ErrValidation)
	}
	var boleto models.Boleto
	if err := db.First(&boleto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: boleto não encontrado", ErrNotFound)
		}
		return nil, err
	}
	return &boleto, nil
}

func getBoletoHandler(c *gin.Context) {
	boleto, err := findBoleto(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !canReadBoleto(currentUser(c), boleto) {
		respondError(c, fmt.Errorf("%w: você não tem permissão para acessar este boleto", ErrForbidden))
		return
	}
	c.JSON(http.StatusOK, boleto)
}

type boletoCreateRequest struct {
	CpfCnpj     string         `json:"cpf_cnpj" binding:"required"`
	NomeEmpresa string         `json:"nome_empresa"`
	Valor       float64        `json:"valor" binding:"required,gt=0"`
	Vencimento  models.Date    `json:"vencimento" binding:"required"`
	Status      models.Status  `json:"status" binding:"required"`
	Observacao  string         `json:"observacao"`
	Historico   models.JSONMap `json:"historico"`
}

func createBoletoHandler(c *gin.Context) {
	var req boletoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", ErrValidation, err.Error()))
		return
	}
	if !req.Status.Valid() {
		respondError(c, fmt.Errorf("%w: status desconhecido", ErrValidation))
		return
	}
	user := currentUser(c)
	historico := req.Historico
	if historico == nil {
		historico = models.JSONMap{}
	}
	boleto := models.Boleto{
		UsuarioID:   &user.ID,
		CpfCnpj:     req.CpfCnpj,
		NomeEmpresa: req.NomeEmpresa,
		Valor:       req.Valor,
		Vencimento:  req.Vencimento,
		Status:      req.Status,
		Observacao:  req.Observacao,
		Historico:   historico,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if cfg.EnforceAuthorizedDocs {
			if err := ensureAuthorizedDocument(tx, boleto.CpfCnpj); err != nil {
				return err
			}
		}
		// Duplicate guard: same document, amount, due date and status.
		var count int64
		tx.Model(&models.Boleto{}).
			Where("cpf_cnpj = ? AND valor = ? AND vencimento = ? AND status = ?",
				boleto.CpfCnpj, boleto.Valor, boleto.Vencimento, boleto.Status).
			Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: boleto duplicado", ErrDuplicate)
		}
		return tx.Create(&boleto).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boleto)
}

type boletoPutRequest struct {
	CpfCnpj     string         `json:"cpf_cnpj" binding:"required"`
	NomeEmpresa string         `json:"nome_empresa"`
	Valor       float64        `json:"valor" binding:"required,gt=0"`
	Vencimento  models.Date    `json:"vencimento" binding:"required"`
	Status      models.Status  `json:"status" binding:"required"`
	Observacao  string         `json:"observacao"`
	Historico   models.JSONMap `json:"historico" binding:"required"`
}

// putBoletoHandler replaces every mutable field.
func putBoletoHandler(c *gin.Context) {
	var req boletoPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", ErrValidation, err.Error()))
		return
	}
	if !req.Status.Valid() {
		respondError(c, fmt.Errorf("%w: status desconhecido", ErrValidation))
		return
	}
	boleto, err := findBoleto(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	boleto.CpfCnpj = req.CpfCnpj
	boleto.NomeEmpresa = req.NomeEmpresa
	boleto.Valor = req.Valor
	boleto.Vencimento = req.Vencimento
	boleto.Status = req.Status
	boleto.Observacao = req.Observacao
	boleto.Historico = req.Historico
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(boleto).Error
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boleto)
}

type boletoPatchRequest struct {
	CpfCnpj     *string         `json:"cpf_cnpj"`
	NomeEmpresa *string         `json:"nome_empresa"`
	Valor       *float64        `json:"valor"`
	Vencimento  *models.Date    `json:"vencimento"`
	Status      *models.Status  `json:"status"`
	Observacao  *string         `json:"observacao"`
	Historico   *models.JSONMap `json:"historico"`
}

// patchBoletoHandler applies only the fields explicitly supplied.
func patchBoletoHandler(c *gin.Context) {
	var req boletoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", ErrValidation, err.Error()))
		return
	}
	if req.Valor != nil && *req.Valor <= 0 {
		respondError(c, fmt.Errorf("%w: valor deve ser maior que zero", ErrValidation))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		respondError(c, fmt.Errorf("%w: status desconhecido", ErrValidation))
		return
	}
	boleto, err := findBoleto(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.CpfCnpj != nil {
		boleto.CpfCnpj = *req.CpfCnpj
	}
	if req.NomeEmpresa != nil {
		boleto.NomeEmpresa = *req.NomeEmpresa
	}
	if req.Valor != nil {
		boleto.Valor = *req.Valor
	}
	if req.Vencimento != nil {
		boleto.Vencimento = *req.Vencimento
	}
	if req.Status != nil {
		boleto.Status = *req.Status
	}
	if req.Observacao != nil {
		boleto.Observacao = *req.Observacao
	}
	if req.Historico != nil {
		boleto.Historico = *req.Historico
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(boleto).Error
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boleto)
}

func deleteBoletoHandler(c *gin.Context) {
	boleto, err := findBoleto(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(boleto).Error
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": fmt.Sprintf("Boleto %d deletado com sucesso.", boleto.ID)})
}

// adminListBoletosHandler pages through every boleto joined with its owner.
func adminListBoletosHandler(c *gin.Context) {
	user := currentUser(c)
	if !canListAllBoletos(user) {
		respondError(c, fmt.Errorf("%w: apenas administradores podem acessar esta rota", ErrForbidden))
		return
	}
	skip, limit := parsePagination(c)
	var boletos []models.Boleto
	if err := db.Model(&models.Boleto{}).Preload("Usuario").
		Order(orderColumn(c.DefaultQuery("order_by", "vencimento"))).
		Offset(skip).Limit(limit).Find(&boletos).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boletos)
}

type documentoCreateRequest struct {
	Tipo      models.TipoDocumento `json:"tipo" binding:"required"`
	Documento string               `json:"documento" binding:"required"`
	Nome      string               `json:"nome"`
	UsuarioID *uint                `json:"usuario_id"`
}

func createDocumentoHandler(c *gin.Context) {
	var req documentoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %s", ErrValidation, err.Error()))
		return
	}
	if !req.Tipo.Valid() {
		respondError(c, fmt.Errorf("%w: tipo deve ser CPF ou CNPJ", ErrValidation))
		return
	}
	usuarioID := currentUser(c).ID
	if req.UsuarioID != nil {
		usuarioID = *req.UsuarioID
	}
	now := time.Now()
	doc := models.DocumentoAutorizado{
		Tipo:       req.Tipo,
		Documento:  req.Documento,
		Nome:       req.Nome,
		Registrado: models.NewDate(now.Year(), now.Month(), now.Day()),
		UsuarioID:  usuarioID,
	}
	if err := db.Create(&doc).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func listDocumentosHandler(c *gin.Context) {
	skip, limit := parsePagination(c)
	var docs []models.DocumentoAutorizado
	if err := db.Order("documento").Offset(skip).Limit(limit).Find(&docs).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ensureAuthorizedDocument rejects documents absent from the side table when
// enforcement is on.
func ensureAuthorizedDocument(tx *gorm.DB, documento string) error {
	var count int64
	if err := tx.Model(&models.DocumentoAutorizado{}).Where("documento = ?", documento).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: documento %s não está autorizado", ErrValidation, documento)
	}
	return nil
}
