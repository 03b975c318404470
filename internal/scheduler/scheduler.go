package scheduler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"LiquiditySentinel/internal/chart"
	"LiquiditySentinel/internal/collector"
	"LiquiditySentinel/internal/history"
	"LiquiditySentinel/internal/model"
	"LiquiditySentinel/internal/monitor"
	"LiquiditySentinel/internal/notifier"
	"LiquiditySentinel/internal/recorder"
	"LiquiditySentinel/internal/strategy"
)

// Scheduler wires the monitors, classifiers, report composer and delivery
// into one dashboard run, and optionally drives it from cron in daemon mode.
type Scheduler struct {
	Cron      *cron.Cron
	NetLiq    *monitor.NetLiquidityMonitor
	Repo      *monitor.RepoMonitor
	Yield     *monitor.YieldCurveMonitor
	CDS       *monitor.CDSMonitor
	Series    []*monitor.SeriesMonitor
	History   *history.Store
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	ChartPath string

	mu      sync.Mutex
	running bool
}

// NewScheduler builds the full monitor set on top of one series fetcher.
func NewScheduler(fetcher collector.SeriesFetcher, cds *collector.CDSScraper, hist *history.Store, tn *notifier.TelegramNotifier, rec recorder.Recorder, chartPath string) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		NetLiq: &monitor.NetLiquidityMonitor{Fetcher: fetcher},
		Repo:   &monitor.RepoMonitor{Fetcher: fetcher},
		Yield:  &monitor.YieldCurveMonitor{Fetcher: fetcher},
		CDS:    &monitor.CDSMonitor{Scraper: cds},
		Series: []*monitor.SeriesMonitor{
			{Fetcher: fetcher, Spec: monitor.TGASpec},
			{Fetcher: fetcher, Spec: monitor.RRPSpec},
			{Fetcher: fetcher, Spec: monitor.FedBalanceSheetSpec},
		},
		History:   hist,
		Notifier:  tn,
		Recorder:  rec,
		ChartPath: chartPath,
	}
}

// RegisterDaily schedules the dashboard run for daemon mode.
func (s *Scheduler) RegisterDaily(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, func() {
		if err := s.RunDashboard(); err != nil {
			log.Error().Err(err).Msg("scheduled dashboard run")
		}
	}); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunDashboard performs one full fetch → classify → report → deliver →
// persist cycle. Concurrent invocations are skipped: the history and
// chart files assume a single writer.
func (s *Scheduler) RunDashboard() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Warn().Msg("dashboard run already in progress, skipping")
		return nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	runID := uuid.NewString()[:8]
	now := time.Now().UTC()
	log.Info().Str("run_id", runID).Msg("dashboard run starting")

	// Required: net liquidity.
	nlRes, err := s.NetLiq.Snapshot(now)
	if err != nil {
		return fmt.Errorf("net liquidity: %w", err)
	}
	nlYoY := nlRes.YoY

	// Required: repo stress.
	repoStats, err := s.Repo.Snapshot(now)
	if err != nil {
		return fmt.Errorf("repo: %w", err)
	}
	stress := strategy.AssessRepoStress(repoStats.LatestValue)
	repoLevel := &stress.Level

	// Optional: yield curve. Failure degrades to a placeholder section.
	var ycSpread *float64
	ycRes, ycErr := s.Yield.Snapshot(now)
	if ycErr != nil {
		log.Warn().Err(ycErr).Str("run_id", runID).Msg("yield curve unavailable")
	} else {
		ycSpread = &ycRes.Spread
	}

	// Classification.
	cycleInfo := strategy.ClassifyCryptoCycle(nlYoY, repoLevel, ycSpread)
	riskScore := strategy.ComputeMarketRiskScore(nlYoY, repoLevel, ycSpread)
	summaryLine := strategy.BuildDynamicSummary(nlYoY, repoLevel, ycSpread)
	escapeLine := strategy.EscapeTopSignal(nlYoY, repoLevel, ycSpread)
	cycleLine := notifier.BuildCycleLine(cycleInfo)
	riskLine := notifier.BuildRiskLine(riskScore)
	positionLine := notifier.BuildPositionLine(cycleInfo)

	// Today's snapshot and trends against history.
	todayRec := model.DailyRecord{
		Date:      now.Format("2006-01-02"),
		NLYoY:     nlYoY,
		RepoLevel: repoLevel,
		YCSpread:  ycSpread,
		Stage:     string(cycleInfo.Stage),
		Label:     cycleInfo.Label,
	}
	trend := history.BuildTrendSections(todayRec, s.History.Records())

	// BTC/ETH strategy section.
	btcEth := strategy.BuildBTCETHSection(model.MacroContext{
		NLYoY:         nlYoY,
		RepoLevel:     repoLevel,
		YCSpread:      ycSpread,
		CycleStage:    cycleInfo.Stage,
		CycleLabel:    cycleInfo.Label,
		RiskScore:     riskScore,
		EscapeComment: escapeLine,
	})

	// Rule-based alerts: policy pivot and QT endpoint.
	var warnings []string
	if *repoLevel >= 3 && nlYoY != nil && *nlYoY > 0 {
		warnings = append(warnings,
			"🔔 *流動性轉折訊號：Repo 壓力升溫 + Net Liquidity 年增率轉正* — 通常意味著政策有停止 QT、甚至偏向寬鬆的壓力。")
	}
	if *repoLevel >= 4 {
		warnings = append(warnings,
			"⚠️ *高機率：Fed QT 接近終點* — Repo 進入高壓區，若搭配金融市場明顯波動，歷史上常見劇本是停止縮表或啟動類 QE。")
	}

	// Required: the remaining detailed monitors.
	seriesBlocks := make([]string, 0, len(s.Series))
	for _, m := range s.Series {
		res, err := m.Snapshot(now)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Spec.ID, err)
		}
		seriesBlocks = append(seriesBlocks, notifier.FormatSeriesBlock(res))
	}

	// Full report assembly.
	var lines []string
	lines = append(lines, summaryLine, cycleLine, escapeLine, riskLine, positionLine, "")
	lines = append(lines, btcEth...)
	lines = append(lines, "")
	lines = append(lines, trend.Week...)
	lines = append(lines, "")
	lines = append(lines, trend.Month...)
	lines = append(lines, "", trend.CycleShift, "")
	if len(warnings) > 0 {
		lines = append(lines, "🚨 *關鍵流動性訊號*")
		lines = append(lines, warnings...)
		lines = append(lines, "")
	}
	lines = append(lines, "📈 *美國流動性總覽 Dashboard*", "")
	lines = append(lines, notifier.FormatNetLiquidityBlock(nlRes), "")
	lines = append(lines, notifier.FormatRepoBlock(repoStats, stress), "")
	for _, block := range seriesBlocks {
		lines = append(lines, block, "")
	}
	if ycRes != nil {
		lines = append(lines, notifier.FormatYieldCurveBlock(ycRes), "")
	} else {
		lines = append(lines, notifier.YieldCurvePlaceholder, "")
	}

	// Optional: sovereign CDS. Shown only on success.
	if cdsRes, err := s.CDS.Snapshot(); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("CDS unavailable, section omitted")
	} else {
		lines = append(lines, notifier.FormatCDSBlock(cdsRes), "")
	}

	fullText := strings.Join(lines, "\n")
	briefText := notifier.BuildBriefMessage(summaryLine, cycleLine, escapeLine, riskLine, positionLine, trend)

	// Required: delivery. A failed text send aborts the run.
	if err := s.Notifier.SendMessage(briefText); err != nil {
		s.recordDelivery(runID, "brief", false, err.Error())
		return err
	}
	s.recordDelivery(runID, "brief", true, "")

	if err := s.Notifier.SendMessage("📚【完整報告】\n\n" + fullText); err != nil {
		s.recordDelivery(runID, "full", false, err.Error())
		return err
	}
	s.recordDelivery(runID, "full", true, "")
	log.Info().Str("run_id", runID).Msg("dashboard text reports sent")

	// Chart is best-effort: its failure never blocks text delivery.
	s.sendChart(runID, nlRes, repoStats, ycSpread)

	// Persist today's snapshot.
	s.History.Upsert(todayRec)
	if err := s.History.Save(); err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("save history")
	}

	if err := s.Recorder.RecordRun(&recorder.RunSnapshot{
		RunID:     runID,
		NLYoY:     nlYoY,
		RepoLevel: repoLevel,
		YCSpread:  ycSpread,
		Stage:     string(cycleInfo.Stage),
		Label:     cycleInfo.Label,
		RiskScore: riskScore,
		Delivered: true,
	}); err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("record run")
	}

	return nil
}

func (s *Scheduler) sendChart(runID string, nlRes *monitor.NetLiquidityResult, repoStats *monitor.RepoStats, ycSpread *float64) {
	spread := 0.0
	if ycSpread != nil {
		spread = *ycSpread
	}
	if err := chart.GenerateLiquiditySnapshot(s.ChartPath, nlRes.LatestValue, repoStats.LatestValue, spread); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("generate chart")
		return
	}
	if err := s.Notifier.SendPhoto(s.ChartPath, "📊 US Liquidity Dashboard（NetLiq / Repo / Yield Curve）"); err != nil {
		log.Warn().Err(err).Str("run_id", runID).Msg("send chart")
		s.recordDelivery(runID, "photo", false, err.Error())
		return
	}
	s.recordDelivery(runID, "photo", true, "")
	log.Info().Str("run_id", runID).Msg("dashboard chart sent")
}

func (s *Scheduler) recordDelivery(runID, kind string, ok bool, detail string) {
	if err := s.Recorder.RecordDelivery(&recorder.DeliveryEvent{
		RunID: runID, Kind: kind, OK: ok, Detail: detail,
	}); err != nil {
		log.Error().Err(err).Msg("record delivery event")
	}
}

// HandleCommand serves daemon-mode chat commands.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/report":
		if err := s.RunDashboard(); err != nil {
			log.Error().Err(err).Msg("command-triggered run")
			return fmt.Sprintf("❌ 報告產生失敗：%v", err)
		}
		return ""
	case "/status":
		rec, ok := s.History.Latest()
		if !ok {
			return "尚無歷史紀錄，請先執行 /report。"
		}
		return formatStatus(rec)
	case "/history":
		if _, ok := s.History.Latest(); !ok {
			return "尚無歷史紀錄，請先執行 /report。"
		}
		if err := s.Notifier.SendDocument(s.History.Path(), "📜 流動性歷史紀錄（JSON）"); err != nil {
			log.Error().Err(err).Msg("send history file")
			return fmt.Sprintf("❌ 歷史檔案傳送失敗：%v", err)
		}
		return ""
	default:
		return "可用命令:\n• /report — 立即產生流動性報告\n• /status — 查看最近一筆紀錄\n• /history — 下載完整歷史紀錄檔"
	}
}

func formatStatus(rec model.DailyRecord) string {
	nl := "N/A"
	if rec.NLYoY != nil {
		nl = fmt.Sprintf("%+.2f%%", *rec.NLYoY)
	}
	repo := "N/A"
	if rec.RepoLevel != nil {
		repo = fmt.Sprintf("Level %d", *rec.RepoLevel)
	}
	yc := "N/A"
	if rec.YCSpread != nil {
		yc = fmt.Sprintf("%+.2f%%", *rec.YCSpread)
	}
	return fmt.Sprintf("🗓 最近紀錄 %s\n流動性 YoY：%s\nRepo 壓力：%s\n殖利率利差：%s\n週期：%s",
		rec.Date, nl, repo, yc, rec.Label)
}
