package basehdl

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
)

// FormFiles mở mọi tệp của trường multipart field thành media.Upload.
// Request không phải multipart coi như không có tệp. Gọi release() sau khi dùng xong để đóng tệp.
func FormFiles(c fiber.Ctx, field string) (uploads []media.Upload, release func(), err error) {
	var opened []multipart.File
	release = func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, release, nil
		}
		return nil, release, common.NewError(common.ErrCodeValidationFormat, "Form multipart không hợp lệ", common.StatusBadRequest, err)
	}

	for _, fh := range form.File[field] {
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		f, openErr := fh.Open()
		if openErr != nil {
			release()
			return nil, func() {}, common.NewError(common.ErrCodeValidationFormat, "Không đọc được tệp "+fh.Filename, common.StatusBadRequest, openErr)
		}
		opened = append(opened, f)
		uploads = append(uploads, media.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Reader:      f,
		})
	}
	return uploads, release, nil
}

// FormFile trả về tệp đầu tiên của trường field, nil nếu không có.
func FormFile(c fiber.Ctx, field string) (*media.Upload, func(), error) {
	uploads, release, err := FormFiles(c, field)
	if err != nil || len(uploads) == 0 {
		return nil, release, err
	}
	return &uploads[0], release, nil
}
