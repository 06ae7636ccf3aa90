package store

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

type setsDocument struct {
	XMLName xml.Name `xml:"backup"`
	Sets    []struct {
		ID          string `xml:"id,attr"`
		Title       string `xml:"title,attr"`
		Description string `xml:"description,attr"`
		Primary     string `xml:"primary,attr"`
		Photos      []struct {
			ID string `xml:"id,attr"`
		} `xml:"photo"`
	} `xml:"sets>set"`
}

type photoIndexDocument struct {
	XMLName xml.Name `xml:"backup"`
	Photos  []struct {
		ID string `xml:"id,attr"`
	} `xml:"photos>photo"`
}

func (o *fileOutput) ReadSets(ctx context.Context) ([]models.Photoset, error) {
	var doc setsDocument
	if err := o.decode(ctx, SetsFile, &doc); err != nil {
		return nil, err
	}

	sets := make([]models.Photoset, 0, len(doc.Sets))
	for _, s := range doc.Sets {
		set := models.Photoset{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			PrimaryID:   s.Primary,
			PhotoIDs:    make([]string, 0, len(s.Photos)),
		}
		for _, p := range s.Photos {
			set.PhotoIDs = append(set.PhotoIDs, p.ID)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func (o *fileOutput) ReadPhotoIndex(ctx context.Context) ([]string, error) {
	var doc photoIndexDocument
	if err := o.decode(ctx, PhotoIndexFile, &doc); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(doc.Photos))
	for _, p := range doc.Photos {
		ids = append(ids, p.ID)
	}

	return ids, nil
}

func (o *fileOutput) decode(ctx context.Context, rel string, v any) error {
	data, err := o.read(rel)
	if err != nil {
		return err
	}

	if err = xml.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileOutput.decode").
			Str("path", rel).
			Msg("error decoding output file")
		return fmt.Errorf("%w: %s: %w", ErrMalformedOutput, rel, err)
	}

	return nil
}
