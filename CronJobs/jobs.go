package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"Apar/Ledger"
	"Apar/Models"
)

// Reconciler periodically recomputes stored balances from the transaction
// rows and repairs drift. Opt-in: it only runs when a cron spec is
// configured, since normal operation keeps balances consistent already.
type Reconciler struct {
	DB   *gorm.DB
	Spec string

	cron *cron.Cron
}

// NewReconciler creates a Reconciler on the given cron spec
func NewReconciler(db *gorm.DB, spec string) *Reconciler {
	return &Reconciler{DB: db, Spec: spec}
}

// Start schedules the reconciliation job
func (r *Reconciler) Start() error {
	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.Spec, func() {
		if err := r.Run(); err != nil {
			log.Printf("Reconciliation run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid reconcile cron spec %q: %w", r.Spec, err)
	}
	r.cron.Start()
	log.Printf("Balance reconciliation scheduled: %s", r.Spec)
	return nil
}

// Stop halts the scheduler
func (r *Reconciler) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// Run reconciles every non-deleted project and its purchase orders against
// the recorded transactions.
func (r *Reconciler) Run() error {
	var projects []Models.Project
	if err := r.DB.Where("is_deleted = ?", false).Find(&projects).Error; err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	repaired := 0
	for i := range projects {
		changed, err := r.reconcileProject(&projects[i])
		if err != nil {
			log.Printf("Reconciliation error for project %d: %v", projects[i].ID, err)
			continue
		}
		if changed {
			repaired++
		}
	}

	log.Printf("Reconciliation completed: %d projects checked, %d repaired", len(projects), repaired)
	return nil
}

func (r *Reconciler) reconcileProject(project *Models.Project) (bool, error) {
	unlock := Ledger.LockProject(project.ID)
	defer unlock()

	var transactions []Models.Transaction
	if err := r.DB.Where("project_id = ?", project.ID).Find(&transactions).Error; err != nil {
		return false, err
	}

	recomputed := Ledger.Recompute(*project, transactions)
	changed := false
	if !recomputed.TotalPaid.Equal(project.TotalPaid) ||
		!recomputed.Balance.Equal(project.Balance) ||
		recomputed.FullyPaid != project.FullyPaid {
		log.Printf("Drift on project %d: stored balance %s, recomputed %s",
			project.ID, project.Balance.StringFixed(2), recomputed.Balance.StringFixed(2))
		project.TotalPaid = recomputed.TotalPaid
		project.Balance = recomputed.Balance
		project.FullyPaid = recomputed.FullyPaid
		if err := r.DB.Save(project).Error; err != nil {
			return false, err
		}
		changed = true
	}

	var vendorPOs []Models.VendorPurchaseOrder
	if err := r.DB.Where("project_id = ? AND is_deleted = ?", project.ID, false).Find(&vendorPOs).Error; err != nil {
		return changed, err
	}
	for i := range vendorPOs {
		po := &vendorPOs[i]
		recomputedPO := Ledger.RecomputePO(*po, transactions)
		if recomputedPO.Balance.Equal(po.Balance) && recomputedPO.IsPaid == po.IsPaid {
			continue
		}
		log.Printf("Drift on purchase order %d: stored balance %s, recomputed %s",
			po.ID, po.Balance.StringFixed(2), recomputedPO.Balance.StringFixed(2))
		po.Balance = recomputedPO.Balance
		po.IsPaid = recomputedPO.IsPaid
		if err := r.DB.Save(po).Error; err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}
