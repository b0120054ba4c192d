package review

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// exportQueueLimit borne haute d'un export; la file de revue réelle reste
// très en deçà.
const exportQueueLimit = 10000

// ExportQueue écrit la file des pièces en attente dans un classeur xlsx
// et renvoie son contenu.
func (uc *UseCase) ExportQueue() ([]byte, error) {
	docs, err := uc.documents.ListByStatus(entity.DocumentPending, exportQueueLimit, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "File de revue"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("création de la feuille: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("suppression de la feuille par défaut: %w", err)
	}

	headers := []string{"ID", "Utilisateur", "Type de document", "Fichier", "Statut", "Déposé le"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("en-tête %s: %w", h, err)
		}
	}

	for row, d := range docs {
		values := []interface{}{
			d.ID, d.UserID, d.DocumentType, d.FileName, d.Status,
			d.UploadedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("ligne %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("écriture du classeur: %w", err)
	}
	return buf.Bytes(), nil
}
