package repositories

import (
	"github.com/katastr-cz/katastr-server/pkg/models"
)

// Tables bundles one generic repository per cadastral table. Constructed once
// at startup and handed to the HTTP layer.
type Tables struct {
	Kraj                  *Table[models.Kraj, models.NewKraj]
	Okres                 *Table[models.Okres, models.NewOkres]
	Obec                  *Table[models.Obec, models.NewObec]
	KatastralniUzemi      *Table[models.KatastralniUzemi, models.NewKatastralniUzemi]
	Bpej                  *Table[models.Bpej, models.NewBpej]
	TypRizeni             *Table[models.TypRizeni, models.NewTypRizeni]
	TypOperace            *Table[models.TypOperace, models.NewTypOperace]
	TypUcastnika          *Table[models.TypUcastnika, models.NewTypUcastnika]
	UcastnikRizeni        *Table[models.UcastnikRizeni, models.NewUcastnikRizeni]
	Majitel               *Table[models.Majitel, models.NewMajitel]
	ListVlastnictvi       *Table[models.ListVlastnictvi, models.NewListVlastnictvi]
	ParcelaRow            *Table[models.ParcelaRow, models.NewParcelaRow]
	Rizeni                *Table[models.Rizeni, models.NewRizeni]
	Vlastnictvi           *Table[models.Vlastnictvi, models.NewVlastnictvi]
	BremenoParcelaParcela *Table[models.BremenoParcelaParcela, models.NewBremenoParcelaParcela]
	BremenoParcelaMajitel *Table[models.BremenoParcelaMajitel, models.NewBremenoParcelaMajitel]
	RizeniOperace         *Table[models.RizeniOperaceRow, models.NewRizeniOperaceRow]
	Plomba                *Table[models.Plomba, models.NewPlomba]
	Ucast                 *Table[models.Ucast, models.NewUcast]
}

// NewTables builds repositories for every cadastral table on the given
// connection pool.
func NewTables(db Querier) *Tables {
	return &Tables{
		Kraj:                  NewTable(db, krajDescriptor()),
		Okres:                 NewTable(db, okresDescriptor()),
		Obec:                  NewTable(db, obecDescriptor()),
		KatastralniUzemi:      NewTable(db, katastralniUzemiDescriptor()),
		Bpej:                  NewTable(db, bpejDescriptor()),
		TypRizeni:             NewTable(db, typRizeniDescriptor()),
		TypOperace:            NewTable(db, typOperaceDescriptor()),
		TypUcastnika:          NewTable(db, typUcastnikaDescriptor()),
		UcastnikRizeni:        NewTable(db, ucastnikRizeniDescriptor()),
		Majitel:               NewTable(db, majitelDescriptor()),
		ListVlastnictvi:       NewTable(db, listVlastnictviDescriptor()),
		ParcelaRow:            NewTable(db, parcelaRowDescriptor()),
		Rizeni:                NewTable(db, rizeniDescriptor()),
		Vlastnictvi:           NewTable(db, vlastnictviDescriptor()),
		BremenoParcelaParcela: NewTable(db, bremenoParcelaParcelaDescriptor()),
		BremenoParcelaMajitel: NewTable(db, bremenoParcelaMajitelDescriptor()),
		RizeniOperace:         NewTable(db, rizeniOperaceDescriptor()),
		Plomba:                NewTable(db, plombaDescriptor()),
		Ucast:                 NewTable(db, ucastDescriptor()),
	}
}
