package weather

import "time"

// Current текущая погода в локации виллы (только для отображения)
type Current struct {
	Location    string    `json:"location"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	TempC       float64   `json:"tempC"`
	FeelsLikeC  float64   `json:"feelsLikeC"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	ObservedAt  time.Time `json:"observedAt"`
}

// apiResponse ответ OpenWeatherMap /data/2.5/weather
type apiResponse struct {
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (r *apiResponse) toCurrent() *Current {
	c := &Current{
		Location:   r.Name,
		TempC:      r.Main.Temp,
		FeelsLikeC: r.Main.FeelsLike,
		Humidity:   r.Main.Humidity,
		WindSpeed:  r.Wind.Speed,
		ObservedAt: time.Unix(r.Dt, 0).UTC(),
	}
	if len(r.Weather) > 0 {
		c.Condition = r.Weather[0].Main
		c.Description = r.Weather[0].Description
		c.Icon = r.Weather[0].Icon
	}
	return c
}
