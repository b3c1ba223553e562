package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/h2non/filetype"
)

// Слоты медиа работы.
const (
	SlotThumbnail = "thumbnail"
	SlotModel     = "model"
)

// glbType бинарный glTF контейнер, в нём хранятся 3D модели галереи.
var glbType = filetype.NewType("glb", "model/gltf-binary")

var glbMagic = []byte("glTF")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 12 && bytes.Equal(buf[:4], glbMagic)
	})
}

// Разрешённые типы по слотам
var allowedMimeTypes = map[string]map[string]bool{
	SlotThumbnail: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
	SlotModel: {
		"model/gltf-binary": true,
	},
}

// ErrUnsupportedType возвращается для файлов, тип которых не разрешён в слоте.
var ErrUnsupportedType = errors.New("storage: unsupported media type")

// DetectedType результат определения типа файла.
type DetectedType struct {
	MIME      string
	Extension string
}

// ValidSlot проверяет имя слота.
func ValidSlot(slot string) bool {
	_, ok := allowedMimeTypes[slot]
	return ok
}

// Detect определяет тип по магическим байтам и проверяет, что он разрешён для слота.
func Detect(slot string, head []byte) (DetectedType, error) {
	allowed, ok := allowedMimeTypes[slot]
	if !ok {
		return DetectedType{}, fmt.Errorf("storage: неизвестный слот %q", slot)
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return DetectedType{}, fmt.Errorf("%w: не удалось определить тип файла", ErrUnsupportedType)
	}
	if !allowed[kind.MIME.Value] {
		return DetectedType{}, fmt.Errorf("%w: %s не разрешён для слота %s", ErrUnsupportedType, kind.MIME.Value, slot)
	}

	return DetectedType{MIME: kind.MIME.Value, Extension: kind.Extension}, nil
}
