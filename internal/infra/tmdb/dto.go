package infra_tmdb

import (
	"strconv"

	"github.com/humanbelnik/reelmatch/core/internal/model"
)

type listingDTO struct {
	Results []titleDTO `json:"results"`
}

type titleDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
	PosterPath   string  `json:"poster_path"`
}

type detailsDTO struct {
	titleDTO
	Genres   []genreDTO   `json:"genres"`
	Keywords *keywordsDTO `json:"keywords"`
	Credits  *creditsDTO  `json:"credits"`
}

type genreDTO struct {
	ID int64 `json:"id"`
}

type keywordsDTO struct {
	Keywords []idDTO `json:"keywords"`
	Results  []idDTO `json:"results"`
}

type idDTO struct {
	ID int64 `json:"id"`
}

type creditsDTO struct {
	Cast []castDTO `json:"cast"`
	Crew []crewDTO `json:"crew"`
}

type castDTO struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

type crewDTO struct {
	ID  int64  `json:"id"`
	Job string `json:"job"`
}

type providersDTO struct {
	Results map[string]regionProvidersDTO `json:"results"`
}

type regionProvidersDTO struct {
	Flatrate []providerDTO `json:"flatrate"`
	Rent     []providerDTO `json:"rent"`
	Buy      []providerDTO `json:"buy"`
}

type providerDTO struct {
	ProviderName string `json:"provider_name"`
}

func (d titleDTO) toModel(kind model.MediaKind) model.Title {
	name := d.Title
	date := d.ReleaseDate
	if kind == model.KindSeries {
		name = d.Name
		date = d.FirstAirDate
	}
	return model.Title{
		ID:          d.ID,
		Kind:        kind,
		Name:        name,
		Year:        yearOf(date),
		Popularity:  d.Popularity,
		VoteAverage: d.VoteAverage,
		VoteCount:   d.VoteCount,
		GenreIDs:    d.GenreIDs,
		PosterPath:  d.PosterPath,
	}
}

func (d detailsDTO) toModel(kind model.MediaKind) model.TitleDetails {
	td := model.TitleDetails{Title: d.titleDTO.toModel(kind)}
	if len(td.GenreIDs) == 0 {
		for _, g := range d.Genres {
			td.GenreIDs = append(td.GenreIDs, g.ID)
		}
	}
	if d.Keywords != nil {
		for _, kw := range d.Keywords.Keywords {
			td.KeywordIDs = append(td.KeywordIDs, kw.ID)
		}
		for _, kw := range d.Keywords.Results {
			td.KeywordIDs = append(td.KeywordIDs, kw.ID)
		}
	}
	if d.Credits != nil {
		for _, c := range d.Credits.Cast {
			td.Cast = append(td.Cast, model.CastMember{PersonID: c.ID, Order: c.Order})
		}
		for _, c := range d.Credits.Crew {
			td.Crew = append(td.Crew, model.CrewMember{PersonID: c.ID, Job: c.Job})
		}
	}
	return td
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
