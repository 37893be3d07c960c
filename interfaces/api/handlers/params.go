package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Madhavladani/adeptjs64/domain/dto"
)

// parseUUIDList แยก "a,b,c" เป็น []uuid.UUID, ค่าว่างข้ามไป
func parseUUIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// optionalUUID คืน nil ถ้าไม่ได้ส่งมา
func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// readLogo อ่านไฟล์ field "svg" ถ้าเป็น multipart และมีไฟล์แนบ
// ต้องเรียก close หลังใช้งานเสร็จ
func readLogo(c *fiber.Ctx) (*dto.LogoUpload, func(), error) {
	noop := func() {}
	if !isMultipart(c) {
		return nil, noop, nil
	}

	fh, err := c.FormFile("svg")
	if err != nil {
		// ไม่มีไฟล์แนบ
		return nil, noop, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	return &dto.LogoUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, func() { f.Close() }, nil
}
