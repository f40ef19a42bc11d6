package backend

import (
	"bytes"
	"io"
	"mime/multipart"
)

// FormData cuerpo multipart para UploadSalesOrder: campos de texto y archivos
// en el orden en que se agregan.
type FormData struct {
	parts []formPart
}

type formPart struct {
	field    string
	value    string
	filename string
	content  io.Reader
}

// NewFormData crea un formulario vacío.
func NewFormData() *FormData { return &FormData{} }

// AddField agrega un campo de texto.
func (f *FormData) AddField(name, value string) *FormData {
	f.parts = append(f.parts, formPart{field: name, value: value})
	return f
}

// AddFile agrega un archivo; content se lee completo al enviar.
func (f *FormData) AddFile(field, filename string, content io.Reader) *FormData {
	f.parts = append(f.parts, formPart{field: field, filename: filename, content: content})
	return f
}

// encode devuelve el cuerpo y el Content-Type con boundary.
func (f *FormData) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if f != nil {
		for _, p := range f.parts {
			if p.content == nil {
				if err := w.WriteField(p.field, p.value); err != nil {
					return nil, "", err
				}
				continue
			}
			fw, err := w.CreateFormFile(p.field, p.filename)
			if err != nil {
				return nil, "", err
			}
			if _, err := io.Copy(fw, p.content); err != nil {
				return nil, "", err
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
