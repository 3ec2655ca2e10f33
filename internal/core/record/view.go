package record

import (
	"time"

	"github.com/jinzhu/copier"
	"gopkg.in/guregu/null.v3"

	"mutabaah.dev/backend/internal/util"
)

// View is the API representation of a record.
type View struct {
	ActivityName string    `json:"name"`
	Date         string    `json:"date"`
	Completed    bool      `json:"completed"`
	Value        null.Int  `json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return util.FormatDate(src.(time.Time)), nil
			},
		},
	},
}

func ToViews(records []*Model) ([]*View, error) {
	views := make([]*View, 0, len(records))
	if err := copier.CopyWithOption(&views, records, viewCopyOption); err != nil {
		return nil, err
	}
	return views, nil
}
