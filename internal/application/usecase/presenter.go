package usecase

import (
	"fmt"
	"time"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
)

// Image sizes linked from the transport form.
var (
	FullImageSize  = model.Size{Width: 800, Height: 600}
	ThumbImageSize = model.Size{Width: 80, Height: 60}
	Thumb2Size     = model.Size{Width: 120, Height: 90}
)

// Presenter builds transport forms. Image links are rooted at address.
type Presenter struct {
	address string
}

func NewPresenter(address string) *Presenter {
	return &Presenter{address: address}
}

func (p *Presenter) ToTransportForm(msg *model.Message) dto.MessageDescriptor {
	d := dto.MessageDescriptor{
		ID:                msg.ID.Hex(),
		Date:              msg.Date.UTC().Format(time.RFC3339),
		SenderName:        msg.SenderName,
		SenderWebsite:     msg.SenderWebsite,
		SenderAvatar:      msg.SenderAvatar,
		SenderGeolocation: (*[2]float64)(msg.SenderGeolocation),
		Content:           msg.Content,
		Tags:              nonNil(msg.Tags),
		Packages:          nonNil(msg.Packages),
		ImageGeolocation:  (*[2]float64)(msg.ImageGeolocation),
		Geolocation:       (*[2]float64)(msg.Geolocation()),
		HasImage:          msg.HasImage(),
		FormattedUsername: msg.FormattedUsername(),
		FormattedContent:  msg.FormattedContent(),
		FormattedWebsite:  msg.FormattedWebsite(),
	}

	if g := msg.ImageGeolocation; g != nil {
		lng, lat := g.Longitude(), g.Latitude()
		d.ImageLongitude, d.ImageLatitude = &lng, &lat
	}

	if g := msg.SenderGeolocation; g != nil {
		lng, lat := g.Longitude(), g.Latitude()
		d.SenderLongitude, d.SenderLatitude = &lng, &lat
	}

	if msg.HasImage() {
		d.ImageURL = p.imageURL("nfimage", msg, FullImageSize)
		d.ThumbURL = p.imageURL("image", msg, ThumbImageSize)
		d.Thumb2URL = p.imageURL("image", msg, Thumb2Size)
	}

	return d
}

func (p *Presenter) imageURL(route string, msg *model.Message, size model.Size) string {
	return fmt.Sprintf("%s/%s/%s/%s", p.address, route, msg.ID.Hex(), size.Key())
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}
