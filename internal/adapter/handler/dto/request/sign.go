package request

const DefaultExpiresIn = 60

type SignRequest struct {
	Key       string  `uri:"key" form:"-" validate:"required"`
	ExpiresIn *string `form:"expiresIn" validate:"omitempty,intrange=1 3600"`
}

func (r SignRequest) ExpiresInSeconds() int {
	return atoiOr(r.ExpiresIn, DefaultExpiresIn)
}
