package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"attendash/internal/config"
	"attendash/internal/exporter"
	"attendash/internal/importer"
	"attendash/internal/sample"
	"attendash/internal/server"
	memstore "attendash/internal/service/store"
	"attendash/internal/store"
	"attendash/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 에 port 가 없을 때만 적용)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일보다 우선)")

	sampleOut    = flag.String("sample", "", "가상 근태 파일 생성 경로 (.xlsx)")
	sampleMonths = flag.String("sampleMonths", "1,2,3", "가상 파일 월 목록")
	sampleStaff  = flag.Int("sampleEmployees", 10, "가상 파일 직원 수")

	importFile = flag.String("import", "", "서버 없이 파일을 가져와 저장")

	exportOut   = flag.String("export", "", "저장된 데이터를 요약 파일로 내보내기 (.xlsx)")
	exportMonth = flag.String("month", "", "내보낼 월 (비어 있으면 전체)")
)

func main() {
	flag.Parse()

	if *sampleOut != "" {
		if err := writeSample(*sampleOut); err != nil {
			log.Fatalf("가상 파일 생성 실패: %v", err)
		}
		fmt.Printf("가상 파일 생성 완료: %s\n", *sampleOut)
		return
	}

	fmt.Println("==========================================")
	fmt.Println("  Attendash - 근태 내보내기 집계 도구")
	fmt.Println("==========================================")

	// 설정 로드
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정 사용: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 명령행 인자 우선
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("데이터 디렉터리 생성 실패: %v", err)
	} else {
		fmt.Printf("데이터 디렉터리: %s\n", dir)
	}

	if *importFile != "" {
		if err := runImport(cfg, *importFile); err != nil {
			log.Fatalf("가져오기 실패: %v", err)
		}
		return
	}

	if *exportOut != "" {
		if err := runExport(cfg, *exportOut, *exportMonth); err != nil {
			log.Fatalf("내보내기 실패: %v", err)
		}
		fmt.Printf("내보내기 완료: %s\n", *exportOut)
		return
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("서버 초기화 실패: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("서비스 시작, 포트 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("브라우저 여는 중: %s\n", url)
		if err := util.OpenBrowser(url); err != nil {
			fmt.Printf("브라우저를 열 수 없습니다. 직접 접속하세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s\n", url)
	}

	fmt.Println("\nCtrl+C 로 종료...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n종료 중...")
	if err := srv.SaveNow(); err != nil {
		log.Printf("종료 전 저장 실패: %v", err)
	}
	if err := srv.Close(); err != nil {
		log.Printf("DB 종료 실패: %v", err)
	}
}

func writeSample(path string) error {
	opts := sample.DefaultOptions()
	opts.Employees = *sampleStaff
	opts.Months = nil
	for _, part := range strings.Split(*sampleMonths, ",") {
		m, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", part, err)
		}
		opts.Months = append(opts.Months, m)
	}
	opts.Seed = uint64(time.Now().UnixNano())

	f, err := sample.Generate(opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func runImport(cfg *config.AppConfig, path string) error {
	st, err := store.New(config.DBPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	coordinator := importer.NewCoordinator(st, memstore.NewMemoryStore())
	ch, err := coordinator.Import(importer.ImportOptions{FilePath: path, Persist: true})
	if err != nil {
		return err
	}

	var failed error
	for evt := range ch {
		switch evt.Type {
		case importer.EventError:
			failed = errors.New(evt.Message)
		case importer.EventDone:
			if r, ok := evt.Data.(*importer.ImportReport); ok {
				fmt.Printf("완료: 시트 %d/%d, 레코드 %d건, 월 %v (%s)\n",
					r.ImportedSheets, r.TotalSheets, r.TotalRecords, r.Months, r.Duration.Round(time.Millisecond))
			}
		default:
			fmt.Println(evt.Message)
		}
	}
	return failed
}

func runExport(cfg *config.AppConfig, path, month string) error {
	st, err := store.New(config.DBPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.LoadSnapshot()
	if err != nil {
		return err
	}
	memory := memstore.NewMemoryStore()
	memory.Restore(snap)

	f, err := exporter.NewExporter(memory).Export(exporter.ExportOptions{
		Month: month,
		Progress: func(p exporter.Progress) {
			if p.Month != "" {
				fmt.Printf("[%3d%%] %s\n", p.Percent(), p.Month)
			}
		},
	})
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
