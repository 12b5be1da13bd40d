package services

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
	"github.com/yungbote/goal-achiever-backend/internal/utils"
)

const avatarSize = 256

// AvatarService renders a deterministic initials avatar for a new user into
// the local media directory, served statically by the router.
type AvatarService interface {
	CreateUserAvatar(ctx context.Context, user *types.User) error
}

type avatarService struct {
	log      *logger.Logger
	mediaDir string
	fontFace font.Face
	bgColors []color.NRGBA
}

func NewAvatarService(log *logger.Logger) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	mediaDir := utils.GetEnv("MEDIA_DIR", "./media", log)
	if err := os.MkdirAll(filepath.Join(mediaDir, "avatars"), 0o755); err != nil {
		return nil, fmt.Errorf("Failed to create media directory: %w", err)
	}

	parsedFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse avatar font: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{Size: 120})

	return &avatarService{
		log:      serviceLog,
		mediaDir: mediaDir,
		fontFace: face,
		bgColors: []color.NRGBA{
			{R: 0x4C, G: 0x6E, B: 0xF5, A: 0xFF},
			{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF},
			{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
			{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
			{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
			{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
		},
	}, nil
}

func (s *avatarService) CreateUserAvatar(ctx context.Context, user *types.User) error {
	initial := "?"
	if email := strings.TrimSpace(user.Email); email != "" {
		initial = strings.ToUpper(string([]rune(email)[0]))
	}
	bg := s.bgColors[colorIndex(user.Email, len(s.bgColors))]

	dc := gg.NewContext(avatarSize, avatarSize)
	dc.SetColor(bg)
	dc.DrawCircle(avatarSize/2, avatarSize/2, avatarSize/2)
	dc.Fill()
	dc.SetFontFace(s.fontFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(initial, avatarSize/2, avatarSize/2, 0.5, 0.55)

	outPath := filepath.Join(s.mediaDir, "avatars", user.ID.String()+".png")
	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("Failed to save avatar png: %w", err)
	}
	user.AvatarURL = "/media/avatars/" + user.ID.String() + ".png"
	return nil
}

func colorIndex(seed string, n int) int {
	var sum int
	for _, r := range seed {
		sum += int(r)
	}
	if n <= 0 {
		return 0
	}
	return sum % n
}
