// Package charset convierte a UTF-8 las exportaciones de pedidos generadas por
// plataformas que todavía emiten CSV en codificaciones heredadas.
package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-web/internal/domain"
)

var encodings = map[string]encoding.Encoding{
	"big5":         traditionalchinese.Big5,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// NewReader envuelve r para decodificar desde name a UTF-8.
// "" y "utf-8" devuelven r sin cambios. Con cualquier otra codificación el
// contenido tiene que ser texto: un .xlsx o .xls transcodificado queda corrupto.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("charset: %w: %q", domain.ErrUnsupportedCharset, name)
	}

	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("charset: leer cabecera: %w", err)
	}
	if ct := http.DetectContentType(head); !strings.HasPrefix(ct, "text/") {
		return nil, fmt.Errorf("charset: %w (%s)", domain.ErrNotTextFile, ct)
	}
	return transform.NewReader(br, enc.NewDecoder()), nil
}

// Supported nombres aceptados por NewReader además de utf-8.
func Supported() []string {
	return []string{"big5", "gbk", "gb18030", "shift_jis", "iso-8859-1", "windows-1252"}
}
