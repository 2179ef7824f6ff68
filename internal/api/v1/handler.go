package v1

import (
	"github.com/esteria/esteria-go/internal/constants"
	"github.com/esteria/esteria-go/internal/service"
	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	service  service.SenderService
	validate *validator.Validate
}

func NewHandler(logger *zap.Logger, service service.SenderService) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) SendSMS(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendSMSRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(&request); err != nil {
		h.logger.Warn("Request validation failed",
			zap.Error(err),
			zap.String("to", request.To))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidationFailed,
			"message": constants.GetErrorMessage(constants.ErrCodeValidationFailed),
		})
	}

	userKey := request.UserKey
	if userKey == "" {
		userKey = uuid.NewString()
	}

	cmd := service.SendSMSCommand{
		Sender:        request.Sender,
		ToNumber:      request.To,
		Text:          request.Text,
		ScheduledAt:   request.ScheduledAt,
		DLRURL:        request.DLRURL,
		ExpiryMinutes: request.ExpiryMinutes,
		Flags:         request.Flags.toFlags(),
		UserKey:       userKey,
		Encoding:      parseEncoding(request.Encoding),
	}

	result, err := h.service.SendWithRetry(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to send SMS",
			zap.Error(err),
			zap.String("to", request.To))
		return err
	}

	h.logger.Info("SMS accepted by gateway",
		zap.Int("messageId", result.MessageID),
		zap.String("to", request.To))

	return c.Status(fiber.StatusCreated).JSON(
		SendSMSResponse{MessageID: result.MessageID, UserKey: result.UserKey, Status: "submitted"})
}

func (f FlagsRequest) toFlags() esteria.Flags {
	var flags esteria.Flags

	if f.Debug {
		flags |= esteria.FlagDebug
	}
	if f.NoLog {
		flags |= esteria.FlagNoLog
	}
	if f.Flash {
		flags |= esteria.FlagFlash
	}
	if f.Test {
		flags |= esteria.FlagTest
	}
	if f.NoBL {
		flags |= esteria.FlagNoBL
	}
	if f.Convert {
		flags |= esteria.FlagConvert
	}

	return flags
}

func parseEncoding(value string) *esteria.Encoding {
	var encoding esteria.Encoding

	switch value {
	case "default":
		encoding = esteria.EncodingDefault
	case "eightbit":
		encoding = esteria.EncodingEightBit
	case "udh":
		encoding = esteria.EncodingUDH
	default:
		return nil
	}

	return &encoding
}
